package extract

import (
	"testing"

	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/htmldoc"
)

func mustContext(t *testing.T, html string, vocab *Vocabulary) *pageContext {
	t.Helper()
	doc, err := htmldoc.Parse(html)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return &pageContext{doc: doc, sourceURL: "https://example.com/r", vocab: vocab}
}

func TestFlattenSections(t *testing.T) {
	sections := []models.IngredientSection{
		{Title: "Ingredients", Items: []string{"2 eggs"}},
		{Title: "For the topping", Items: []string{"sugar"}},
	}
	want := []string{"2 eggs", "For the topping:", "sugar"}
	assertStrings(t, "FlattenSections", FlattenSections(sections), want)
}

func TestFlattenSections_HebrewDefault(t *testing.T) {
	sections := []models.IngredientSection{
		{Title: "מצרכים", Items: []string{"2 ביצים", "כוס קמח"}},
		{Title: "לציפוי", Items: []string{"שוקולד מומס"}},
	}
	want := []string{"2 ביצים", "כוס קמח", "לציפוי:", "שוקולד מומס"}
	assertStrings(t, "FlattenSections", FlattenSections(sections), want)
}

func TestFlattenSections_SkipsEmpty(t *testing.T) {
	sections := []models.IngredientSection{
		{Title: "לרוטב"},
		{Items: []string{"מלח"}},
	}
	want := []string{"מלח"}
	assertStrings(t, "FlattenSections", FlattenSections(sections), want)
}

func TestIngredientsFromMetaDescription(t *testing.T) {
	html := `<html><head>
<meta property="og:description" content="Ingredients: 2 eggs, 1 cup flour Preparation: mix and bake">
</head><body></body></html>`
	ctx := mustContext(t, html, englishVocabulary)

	items, ok := ingredientsFromMetaDescription(ctx)
	if !ok {
		t.Fatal("strategy declined, want items")
	}
	assertStrings(t, "items", items, []string{"2 eggs", "1 cup flour"})
}

func TestIngredientsFromMetaDescription_NoMarkerDeclines(t *testing.T) {
	html := `<html><head>
<meta property="og:description" content="The tastiest cake you will ever make.">
</head><body></body></html>`
	ctx := mustContext(t, html, englishVocabulary)

	if _, ok := ingredientsFromMetaDescription(ctx); ok {
		t.Error("strategy accepted a description without a preparation marker")
	}
}

func TestIngredientsFromStructuredContainer(t *testing.T) {
	html := `<html><body>
<div class="ingredients">
  <ul><li>2 ביצים</li><li>כוס סוכר</li></ul>
  <h3>לציפוי</h3>
  <ul><li>שוקולד מומס</li></ul>
  <div class="pan-size">תבנית 24 ס"מ</div>
</div>
</body></html>`
	ctx := mustContext(t, html, hebrewVocabulary)

	items, ok := ingredientsFromStructuredContainer(ctx)
	if !ok {
		t.Fatal("strategy declined, want items")
	}
	want := []string{"2 ביצים", "כוס סוכר", "לציפוי:", "שוקולד מומס", "גודל תבנית:", `תבנית 24 ס"מ`}
	assertStrings(t, "items", items, want)
}

func TestIngredientsFromStructuredContainer_LooseItems(t *testing.T) {
	html := `<html><body>
<div class="recipe-ingredients"><li>קמח</li><li>מים</li></div>
</body></html>`
	ctx := mustContext(t, html, hebrewVocabulary)

	items, ok := ingredientsFromStructuredContainer(ctx)
	if !ok {
		t.Fatal("strategy declined, want items")
	}
	assertStrings(t, "items", items, []string{"קמח", "מים"})
}

func TestIngredientsFromBodyMarker(t *testing.T) {
	html := `<html><body><article>
<p>מצרכים:<br>2 ביצים<br>כוס קמח</p>
<p>אופן הכנה: לערבב הכל</p>
</article></body></html>`
	ctx := mustContext(t, html, hebrewVocabulary)

	items, ok := ingredientsFromBodyMarker(ctx)
	if !ok {
		t.Fatal("strategy declined, want items")
	}
	assertStrings(t, "items", items, []string{"2 ביצים", "כוס קמח"})
}

func TestIngredientsFromParagraphScan(t *testing.T) {
	html := `<html><body>
<p dir="rtl">לציפוי</p>
<p dir="rtl">100 גרם שוקולד</p>
<p dir="rtl">2 כפות חמאה</p>
<p dir="rtl">איך מכינים את זה בבית</p>
<p dir="rtl">ממיסים את השוקולד</p>
</body></html>`
	ctx := mustContext(t, html, hebrewVocabulary)

	items, ok := ingredientsFromParagraphScan(ctx)
	if !ok {
		t.Fatal("strategy declined, want items")
	}
	want := []string{"לציפוי:", "100 גרם שוקולד", "2 כפות חמאה"}
	assertStrings(t, "items", items, want)
}

func TestSplitAtMarker(t *testing.T) {
	markers := []string{"אופן הכנה", "הכנה:"}

	before, after, found := splitAtMarker("מצרכים וכולי אופן הכנה לערבב", markers)
	if !found {
		t.Fatal("marker not found")
	}
	if got, want := before, "מצרכים וכולי "; got != want {
		t.Errorf("before = %q, want %q", got, want)
	}
	if got, want := after, " לערבב"; got != want {
		t.Errorf("after = %q, want %q", got, want)
	}

	if _, _, found := splitAtMarker("אין כאן סימן", markers); found {
		t.Error("found = true for text without markers")
	}
}

func TestSplitAtMarker_EarliestWins(t *testing.T) {
	_, after, found := splitAtMarker("one METHOD two preparation three", []string{"preparation", "method"})
	if !found {
		t.Fatal("marker not found")
	}
	if got, want := after, " two preparation three"; got != want {
		t.Errorf("after = %q, want %q", got, want)
	}
}
