// Package htmldoc wraps a fetched page in a queryable parse tree. The
// document is owned by a single parse call and never persisted.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the in-memory parse tree of one page's markup.
type Document struct {
	*goquery.Document

	// RawHTML keeps the original markup around for whole-page scans
	// (category keywords, embedded JSON detection).
	RawHTML string
}

// Parse builds a Document from raw markup. This is the only place the
// pipeline can fail structurally; empty markup is rejected so callers get
// their all-default record instead of silently extracting nothing.
func Parse(html string) (*Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("empty markup")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &Document{Document: doc, RawHTML: html}, nil
}

// MetaProperty returns the content of a <meta property="..."> tag.
func (d *Document) MetaProperty(property string) (string, bool) {
	sel := d.Find(fmt.Sprintf(`meta[property=%q]`, property)).First()
	content, ok := sel.Attr("content")
	content = strings.TrimSpace(content)
	return content, ok && content != ""
}

// MetaName returns the content of a <meta name="..."> tag.
func (d *Document) MetaName(name string) (string, bool) {
	sel := d.Find(fmt.Sprintf(`meta[name=%q]`, name)).First()
	content, ok := sel.Attr("content")
	content = strings.TrimSpace(content)
	return content, ok && content != ""
}

// FirstText returns the trimmed text of the first selector in the list
// that matches a non-empty element.
func (d *Document) FirstText(selectors ...string) (string, bool) {
	for _, selector := range selectors {
		text := strings.TrimSpace(d.Find(selector).First().Text())
		if text != "" {
			return text, true
		}
	}
	return "", false
}

// FirstAttr returns the trimmed attribute of the first selector in the
// list that carries it non-empty.
func (d *Document) FirstAttr(attr string, selectors ...string) (string, bool) {
	for _, selector := range selectors {
		value, ok := d.Find(selector).First().Attr(attr)
		value = strings.TrimSpace(value)
		if ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// CollapseWhitespace folds runs of whitespace (including newlines) into
// single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
