package classify

import "strings"

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "general"

// Category pairs a stable category name with the keyword stems that map
// text onto it. Matching is plain substring containment, deliberately
// permissive: recipe titles are short and inflected stems still hit.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the fixed category table. Declaration order is the
// tie-break: a recipe matching two categories resolves to the earlier one,
// so the order must not be reshuffled.
var DefaultCategories = []Category{
	{Name: "cakes", Keywords: []string{"עוגה", "עוגות", "עוגת", "טורט", "cake", "torte"}},
	{Name: "cookies", Keywords: []string{"עוגיות", "עוגיה", "ביסקוטי", "cookie", "biscotti"}},
	{Name: "breads", Keywords: []string{"לחם", "חלה", "בייגל", "פיתה", "bread", "challah", "bagel", "pita"}},
	{Name: "desserts", Keywords: []string{"קינוח", "מוס", "פודינג", "קרם", "dessert", "mousse", "pudding"}},
	{Name: "sweets", Keywords: []string{"שוקולד", "ממתק", "פרלין", "טראפל", "chocolate", "praline", "truffle"}},
	{Name: "pastries", Keywords: []string{"מאפה", "בורקס", "פשטידה", "קיש", "pastry", "quiche"}},
	{Name: "meals", Keywords: []string{"ארוחה", "תבשיל", "מרק", "פסטה", "אורז", "סלט", "stew", "soup", "pasta", "rice"}},
	{Name: "salads", Keywords: []string{"סלט", "ירקות", "salad", "vegetable"}},
}

// CategoryClassifier maps recipe text to one category from an ordered
// table. The table is injected so callers can tune keywords without
// touching global state.
type CategoryClassifier struct {
	categories []Category
}

func NewCategoryClassifier(categories []Category) *CategoryClassifier {
	return &CategoryClassifier{categories: categories}
}

// Classify returns the first declared category with any keyword contained
// in title+content, or DefaultCategory on no match.
func (c *CategoryClassifier) Classify(title, content string) string {
	normalized := strings.ToLower(title + " " + content)

	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				return category.Name
			}
		}
	}

	return DefaultCategory
}
