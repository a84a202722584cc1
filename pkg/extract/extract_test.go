package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/classify"
)

func newTestPipeline() *Pipeline {
	return NewPipeline(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

const hebrewRecipePage = `<!DOCTYPE html>
<html lang="he">
<head>
<title>עוגת שוקולד מושלמת - האתר של רותי</title>
<meta property="og:title" content="עוגת שוקולד מושלמת #מתכון | האתר של רותי">
<meta property="og:description" content="מצרכים:
2 ביצים
כוס סוכר
חצי כוס קקאו
אופן הכנה:
לערבב את כל החומרים
לאפות 40 דקות בתנור">
<meta name="author" content="רותי כהן">
</head>
<body dir="rtl">
<div class="breadcrumbs"><a href="/">עמוד הבית</a><a href="/cakes">עוגות</a></div>
<article>
<h1>עוגת שוקולד מושלמת</h1>
<img class="wp-post-image" src="/images/cake.jpg" alt="עוגת שוקולד">
<div class="prep-time">45 דקות</div>
<iframe src="https://www.youtube.com/watch?v=dQw4w9WgXcQ"></iframe>
<p>העוגה הכי טובה שתכינו השנה.</p>
</article>
</body>
</html>`

func TestParseRecipe_FullPage(t *testing.T) {
	pipeline := newTestPipeline()
	payload := &models.RawPayload{
		SourceURL: "https://www.example.co.il/recipes/chocolate-cake",
		HTML:      hebrewRecipePage,
		Status:    models.FetchOK,
	}

	recipe := pipeline.ParseRecipe(payload, payload.SourceURL)

	if got, want := recipe.Title, "עוגת שוקולד מושלמת"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	wantIngredients := []string{"2 ביצים", "כוס סוכר", "חצי כוס קקאו"}
	assertStrings(t, "Ingredients", recipe.Ingredients, wantIngredients)
	wantInstructions := []string{"לערבב את כל החומרים", "לאפות 40 דקות בתנור"}
	assertStrings(t, "Instructions", recipe.Instructions, wantInstructions)
	if got, want := recipe.Image, "https://www.example.co.il/images/cake.jpg"; got != want {
		t.Errorf("Image = %q, want %q", got, want)
	}
	if got, want := recipe.Category, "cakes"; got != want {
		t.Errorf("Category = %q, want %q", got, want)
	}
	if got, want := recipe.Source, "example.co.il"; got != want {
		t.Errorf("Source = %q, want %q", got, want)
	}
	if got, want := recipe.YoutubeURL, "https://www.youtube.com/embed/dQw4w9WgXcQ"; got != want {
		t.Errorf("YoutubeURL = %q, want %q", got, want)
	}
	if got, want := recipe.Author, "רותי כהן"; got != want {
		t.Errorf("Author = %q, want %q", got, want)
	}
	if got, want := recipe.PrepTime, "45 דקות"; got != want {
		t.Errorf("PrepTime = %q, want %q", got, want)
	}
}

func TestParseRecipe_EmptyPayload(t *testing.T) {
	pipeline := newTestPipeline()
	sourceURL := "https://www.example.com/recipes/1"

	recipe := pipeline.ParseRecipe(&models.RawPayload{SourceURL: sourceURL}, sourceURL)

	if got, want := recipe.Title, DefaultTitle; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if got, want := recipe.Image, PlaceholderImage; got != want {
		t.Errorf("Image = %q, want %q", got, want)
	}
	if got, want := recipe.Category, classify.DefaultCategory; got != want {
		t.Errorf("Category = %q, want %q", got, want)
	}
	if got, want := recipe.Source, "example.com"; got != want {
		t.Errorf("Source = %q, want %q", got, want)
	}
	if got, want := recipe.SourceURL, sourceURL; got != want {
		t.Errorf("SourceURL = %q, want %q", got, want)
	}
	if recipe.Ingredients == nil || recipe.Instructions == nil {
		t.Error("empty payload must still yield empty slices, not nil")
	}
}

func TestParseRecipe_NilPayload(t *testing.T) {
	recipe := newTestPipeline().ParseRecipe(nil, "https://example.com/r")
	if recipe.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", recipe.Title, DefaultTitle)
	}
}

func TestParseRecipe_NeverFails(t *testing.T) {
	pipeline := newTestPipeline()
	payloads := []string{
		"<html><body><p>not a recipe at all</p></body></html>",
		"<div><span>broken <b>nesting</div></span>",
		"\x00\x01\x02 binary garbage",
		"<html>" + string(make([]byte, 64)) + "</html>",
	}
	for _, html := range payloads {
		recipe := pipeline.ParseRecipe(&models.RawPayload{HTML: html}, "https://example.com/x")
		if recipe.Title == "" {
			t.Errorf("payload %q: empty title, want at least the default", html)
		}
		if recipe.Category == "" {
			t.Errorf("payload %q: empty category, want at least the default", html)
		}
	}
}

func TestSourceHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.foodblog.co.il/recipes/1", "foodblog.co.il"},
		{"https://foodblog.co.il/recipes/1", "foodblog.co.il"},
		{"http://www.tiktok.com/@cook/video/7", "tiktok.com"},
		{"not a url", UnknownSource},
		{"::broken", UnknownSource},
		{"", UnknownSource},
	}
	for _, tt := range tests {
		if got := sourceHost(tt.url); got != tt.want {
			t.Errorf("sourceHost(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name   string
		image  string
		source string
		want   string
	}{
		{"relative parent path", "../img/x.jpg", "https://site.com/recipes/a", "https://site.com/img/x.jpg"},
		{"root relative", "/images/cake.jpg", "https://site.com/recipes/a", "https://site.com/images/cake.jpg"},
		{"absolute passthrough", "https://cdn.site.com/cake.jpg", "https://site.com/recipes/a", "https://cdn.site.com/cake.jpg"},
		{"empty candidate", "", "https://site.com/recipes/a", PlaceholderImage},
		{"bad escape in candidate", "%zz.jpg", "https://site.com/recipes/a", PlaceholderImage},
		{"relative base", "x.jpg", "/no/host", PlaceholderImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveImageURL(tt.image, tt.source); got != tt.want {
				t.Errorf("resolveImageURL(%q, %q) = %q, want %q", tt.image, tt.source, got, tt.want)
			}
		})
	}
}

func assertStrings(t *testing.T, field string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %q, want %q", field, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", field, i, got[i], want[i])
		}
	}
}
