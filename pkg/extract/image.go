package extract

import (
	"strconv"
	"strings"
)

// imageChain walks from the most specific image container down to any
// image in the article body, finishing with readability's lead image.
// Candidates pointing at placeholder assets are treated as misses so the
// chain keeps going.
var imageChain = []textHeuristic{
	imageFromContainer,
	imageFromFeatured,
	imageFromMediaSection,
	imageFromArticleBody,
	imageFromReadability,
}

func imageFromContainer(ctx *pageContext) (string, bool) {
	img := ctx.doc.Find(".image-container img, .featured-media-section img").First()

	if srcset, ok := img.Attr("srcset"); ok {
		if candidate := bestSrcsetCandidate(srcset); candidate != "" {
			return acceptImage(candidate)
		}
	}
	if src, ok := img.Attr("src"); ok {
		return acceptImage(src)
	}
	return "", false
}

func imageFromFeatured(ctx *pageContext) (string, bool) {
	src, ok := ctx.doc.FirstAttr("src", "img.wp-post-image", "img[itemprop=\"image\"]")
	if !ok {
		return "", false
	}
	return acceptImage(src)
}

func imageFromMediaSection(ctx *pageContext) (string, bool) {
	src, ok := ctx.doc.FirstAttr("src", ".media img", ".recipe-image img", ".main-image img")
	if !ok {
		return "", false
	}
	return acceptImage(src)
}

func imageFromArticleBody(ctx *pageContext) (string, bool) {
	src, ok := ctx.doc.FirstAttr("src", "article img")
	if !ok {
		return "", false
	}
	return acceptImage(src)
}

func imageFromReadability(ctx *pageContext) (string, bool) {
	if ctx.article == nil {
		return "", false
	}
	return acceptImage(ctx.article.Image)
}

// acceptImage rejects empty candidates and placeholder assets; a
// placeholder hit means the site had no real image there.
func acceptImage(src string) (string, bool) {
	src = strings.TrimSpace(src)
	if src == "" || strings.Contains(src, "placeholder") {
		return "", false
	}
	return src, true
}

// bestSrcsetCandidate parses a responsive source set ("url descriptor,
// url descriptor, ...") and returns the widest candidate, falling back to
// the first URL when no width descriptors are present.
func bestSrcsetCandidate(srcset string) string {
	var bestURL string
	bestWidth := -1

	for _, entry := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(entry))
		if len(fields) == 0 {
			continue
		}

		candidate := fields[0]
		width := 0
		if len(fields) > 1 && strings.HasSuffix(fields[1], "w") {
			if parsed, err := strconv.Atoi(strings.TrimSuffix(fields[1], "w")); err == nil {
				width = parsed
			}
		}

		if bestURL == "" || width > bestWidth {
			bestURL = candidate
			bestWidth = width
		}
	}

	return bestURL
}
