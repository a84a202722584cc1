package extract

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	youtubeEmbedPath = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`)
	youtubeShortLink = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`)
	tiktokVideoID    = regexp.MustCompile(`/(?:video|embed(?:/v2)?)/(\d+)`)
)

// extractVideoEmbed finds an embedded long-video player and normalizes it
// to the stable embed URL form; without a player it falls back to the
// first platform anchor, passed through as-is.
func extractVideoEmbed(ctx *pageContext) string {
	if src, ok := ctx.doc.FirstAttr("src",
		`iframe[src*="youtube.com"]`, `iframe[src*="youtu.be"]`); ok {
		if normalized := NormalizeYoutubeURL(src); normalized != "" {
			return normalized
		}
		return src
	}

	if href, ok := ctx.doc.FirstAttr("href",
		`a[href*="youtube.com"]`, `a[href*="youtu.be"]`); ok {
		return href
	}
	return ""
}

// NormalizeYoutubeURL rebuilds any recognized YouTube URL form (watch,
// short link, embed) into the canonical embed URL. Returns "" when no
// video identifier can be found.
func NormalizeYoutubeURL(raw string) string {
	if matches := youtubeEmbedPath.FindStringSubmatch(raw); len(matches) > 1 {
		return "https://www.youtube.com/embed/" + matches[1]
	}
	if matches := youtubeShortLink.FindStringSubmatch(raw); len(matches) > 1 {
		return "https://www.youtube.com/embed/" + matches[1]
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if !strings.Contains(parsed.Host, "youtube.com") {
		return ""
	}
	if id := parsed.Query().Get("v"); id != "" {
		return "https://www.youtube.com/embed/" + id
	}
	return ""
}

// NormalizeTiktokURL rebuilds a TikTok watch/embed URL into the legacy
// embed form. Returns "" when no numeric video id is present.
func NormalizeTiktokURL(raw string) string {
	if !strings.Contains(raw, "tiktok.com") {
		return ""
	}
	if matches := tiktokVideoID.FindStringSubmatch(raw); len(matches) > 1 {
		return "https://www.tiktok.com/embed/" + matches[1]
	}
	return ""
}
