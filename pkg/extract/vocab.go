package extract

import (
	"regexp"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Vocabulary holds the marker phrases the body and caption scanners look
// for. Recipe pages in this corpus are mostly Hebrew with a long tail of
// English food blogs, so the vocabulary is selected per page.
type Vocabulary struct {
	// IngredientMarkers start the ingredient block ("מצרכים", "ingredients").
	IngredientMarkers []string
	// InstructionMarkers start the preparation block.
	InstructionMarkers []string
	// SectionHeaders label ingredient sub-sections ("for the topping").
	SectionHeaders []string
	// Boilerplate lines are calls-to-action and navigation text that must
	// never be collected as recipe content.
	Boilerplate []string
	// PrepMarker is the phrase whose appearance ends ingredient scanning.
	PrepMarker string
	// IngredientsLabel is the literal label stripped from list heads.
	IngredientsLabel string
	// DefaultSectionTitle marks the unnamed section: its items are
	// flattened without a header line.
	DefaultSectionTitle string
	// PanSizeTitle labels the pan/dish-size pseudo-section.
	PanSizeTitle string
	// UnitPattern matches quantity-plus-unit ingredient lines.
	UnitPattern *regexp.Regexp
}

var hebrewVocabulary = &Vocabulary{
	IngredientMarkers:   []string{"מצרכים", "חומרים", "רכיבים"},
	InstructionMarkers:  []string{"אופן הכנה", "הוראות הכנה", "הכנה:", "שלבי הכנה"},
	SectionHeaders:      []string{"מצרכים", "למשרה", "לרוטב", "לציפוי", "לקישוט", "למילוי"},
	Boilerplate:         []string{"הכנתם?", "איך מכינים", "עמוד הבית", "קטגוריות", "חפש", "תפריט"},
	PrepMarker:          "איך מכינים",
	IngredientsLabel:    "מצרכים:",
	DefaultSectionTitle: "מצרכים",
	PanSizeTitle:        "גודל תבנית",
	UnitPattern:         regexp.MustCompile(`\d+\s*(גרם|כפית|כף|כוס|מ"ל|מל|ק"ג)`),
}

var englishVocabulary = &Vocabulary{
	IngredientMarkers:   []string{"ingredients", "materials"},
	InstructionMarkers:  []string{"preparation", "instructions", "method", "directions", "how to prepare"},
	SectionHeaders:      []string{"ingredients", "for the base", "for the sauce", "for the topping", "for the filling", "for the garnish"},
	Boilerplate:         []string{"subscribe", "follow us", "home page", "categories", "search", "menu"},
	PrepMarker:          "how to prepare",
	IngredientsLabel:    "ingredients:",
	DefaultSectionTitle: "ingredients",
	PanSizeTitle:        "pan size",
	UnitPattern:         regexp.MustCompile(`(?i)\d+\s*(grams?|gr\b|teaspoons?|tsp|tablespoons?|tbsp|cups?|ml\b|kg\b)`),
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// languageDetector builds the Hebrew/English detector once; model loading
// is too slow to repeat per parse.
func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Hebrew, lingua.English).
			Build()
	})
	return detector
}

var hebrewScript = regexp.MustCompile(`\p{Hebrew}`)

// VocabularyFor picks the marker vocabulary for a page from a sample of
// its text. Detection failures fall back to script inspection, and an
// empty sample defaults to Hebrew (the corpus default).
func VocabularyFor(sample string) *Vocabulary {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return hebrewVocabulary
	}

	if language, ok := languageDetector().DetectLanguageOf(sample); ok {
		if language == lingua.English {
			return englishVocabulary
		}
		return hebrewVocabulary
	}

	if hebrewScript.MatchString(sample) {
		return hebrewVocabulary
	}
	return englishVocabulary
}

// containsAny reports whether s contains any of the given markers,
// case-insensitively.
func containsAny(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, marker := range markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
