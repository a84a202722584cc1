package extract

import (
	"regexp"
	"strings"

	"github.com/test01203/hebrew-cookbook-extractor/pkg/htmldoc"
)

// titleChain tries page metadata first, then visible headings, then the
// document title, and finally the featured image's alt text.
var titleChain = []textHeuristic{
	titleFromMeta,
	titleFromHeading,
	titleFromDocumentTitle,
	titleFromReadability,
	titleFromImageAlt,
}

func titleFromMeta(ctx *pageContext) (string, bool) {
	if title, ok := ctx.doc.MetaProperty("og:title"); ok {
		return title, true
	}
	return ctx.doc.MetaName("twitter:title")
}

func titleFromHeading(ctx *pageContext) (string, bool) {
	return ctx.doc.FirstText("h1", ".recipe-title", ".entry-title")
}

func titleFromDocumentTitle(ctx *pageContext) (string, bool) {
	return ctx.doc.FirstText("title")
}

func titleFromReadability(ctx *pageContext) (string, bool) {
	if ctx.article == nil || strings.TrimSpace(ctx.article.Title) == "" {
		return "", false
	}
	return strings.TrimSpace(ctx.article.Title), true
}

func titleFromImageAlt(ctx *pageContext) (string, bool) {
	return ctx.doc.FirstAttr("alt",
		".featured-media-section img", "img.wp-post-image", "img[itemprop=\"image\"]")
}

var (
	// hashtagPattern covers Latin and Hebrew (any Unicode letter) tags.
	hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	// platformSuffixes are trailing site decorations stripped off titles.
	platformSuffixes = []string{"- YouTube", "- TikTok", "| TikTok"}
)

// CleanTitle normalizes an extracted title: hashtags out, platform
// suffixes off, truncated at the first pipe, whitespace collapsed.
func CleanTitle(title string) string {
	title = hashtagPattern.ReplaceAllString(title, "")

	if idx := strings.Index(title, "|"); idx >= 0 {
		title = title[:idx]
	}

	title = strings.TrimSpace(title)
	for _, suffix := range platformSuffixes {
		title = strings.TrimSpace(strings.TrimSuffix(title, suffix))
	}

	return htmldoc.CollapseWhitespace(title)
}
