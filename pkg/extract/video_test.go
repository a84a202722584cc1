package extract

import "testing"

func TestNormalizeYoutubeURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PL123", ""},
		{"https://vimeo.com/123456", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeYoutubeURL(tt.raw); got != tt.want {
			t.Errorf("NormalizeYoutubeURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeTiktokURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.tiktok.com/@cook/video/7312345678901234567", "https://www.tiktok.com/embed/7312345678901234567"},
		{"https://www.tiktok.com/embed/v2/7312345678901234567", "https://www.tiktok.com/embed/7312345678901234567"},
		{"https://www.tiktok.com/@cook", ""},
		{"https://example.com/video/123", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTiktokURL(tt.raw); got != tt.want {
			t.Errorf("NormalizeTiktokURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExtractVideoEmbed_Iframe(t *testing.T) {
	html := `<html><body>
<iframe src="https://www.youtube.com/watch?v=abc123XYZ"></iframe>
</body></html>`
	ctx := mustContext(t, html, hebrewVocabulary)

	if got, want := extractVideoEmbed(ctx), "https://www.youtube.com/embed/abc123XYZ"; got != want {
		t.Errorf("extractVideoEmbed = %q, want %q", got, want)
	}
}

func TestExtractVideoEmbed_AnchorFallback(t *testing.T) {
	html := `<html><body>
<a href="https://youtu.be/abc123XYZ">לצפייה בסרטון</a>
</body></html>`
	ctx := mustContext(t, html, hebrewVocabulary)

	if got, want := extractVideoEmbed(ctx), "https://youtu.be/abc123XYZ"; got != want {
		t.Errorf("extractVideoEmbed = %q, want %q", got, want)
	}
}

func TestExtractVideoEmbed_None(t *testing.T) {
	ctx := mustContext(t, "<html><body><p>no video</p></body></html>", hebrewVocabulary)
	if got := extractVideoEmbed(ctx); got != "" {
		t.Errorf("extractVideoEmbed = %q, want empty", got)
	}
}
