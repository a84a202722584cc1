package importer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/htmldoc"
)

const defaultPreviewTitle = "מתכון"

// DiscoverRecipes fetches a source's index page and collects its recipe
// links as importable previews. Preview titles come from the URL slug;
// the real title is extracted at import time.
func (imp *Importer) DiscoverRecipes(source models.Source) ([]models.RecipePreview, error) {
	payload, err := imp.fetch(source.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source index: %w", err)
	}

	doc, err := htmldoc.Parse(payload.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source index: %w", err)
	}

	base, err := url.Parse(source.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}

	var previews []models.RecipePreview
	seen := make(map[string]struct{})

	doc.Find(`a[href*="recipe"]`).Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || !strings.Contains(href, "recipe") {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		absolute := base.ResolveReference(ref).String()
		if _, dup := seen[absolute]; dup {
			return
		}
		seen[absolute] = struct{}{}

		previews = append(previews, models.RecipePreview{
			Title: previewTitle(absolute),
			URL:   absolute,
		})
	})

	return previews, nil
}

// previewTitle derives a readable label from the URL slug.
func previewTitle(recipeURL string) string {
	parsed, err := url.Parse(recipeURL)
	if err != nil {
		return defaultPreviewTitle
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	slug := segments[len(segments)-1]
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}

	title := strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
	if title == "" {
		return defaultPreviewTitle
	}
	return title
}
