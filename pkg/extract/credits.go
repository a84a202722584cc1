package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractCredits finds the recipe author and credit line: author meta tag
// first, then structured data, then the usual CSS classes, then the
// readability byline.
func extractCredits(ctx *pageContext) (author, credits string) {
	if meta, ok := ctx.doc.MetaName("author"); ok {
		author = meta
	} else if structured, ok := ctx.doc.FirstText(`[itemprop="author"]`); ok {
		author = structured
	} else if classed, ok := ctx.doc.FirstText(".author", ".recipe-author"); ok {
		author = classed
	} else if ctx.article != nil {
		author = strings.TrimSpace(ctx.article.Byline)
	}

	credits, _ = ctx.doc.FirstText(".credits", ".recipe-credits")
	return author, credits
}

// extractSiteCategories reads the site's own taxonomy for the page,
// preferring structured data over breadcrumb navigation. This is distinct
// from the computed recipe category.
func extractSiteCategories(ctx *pageContext) []string {
	if section, ok := ctx.doc.MetaProperty("article:section"); ok {
		return []string{section}
	}
	if keywords, ok := ctx.doc.MetaName("keywords"); ok {
		var categories []string
		for _, keyword := range strings.Split(keywords, ",") {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				categories = append(categories, keyword)
			}
		}
		if len(categories) > 0 {
			return categories
		}
	}

	var categories []string
	ctx.doc.Find(".categories a, .breadcrumbs a").Each(func(_ int, link *goquery.Selection) {
		if text := strings.TrimSpace(link.Text()); text != "" {
			categories = append(categories, text)
		}
	})
	return categories
}

// extractPrepTime is a single best-effort lookup; the field is optional
// so there is no fallback chain.
func extractPrepTime(ctx *pageContext) string {
	prepTime, _ := ctx.doc.FirstText(`[itemprop="totalTime"]`, ".prep-time", ".cooking-time")
	return prepTime
}
