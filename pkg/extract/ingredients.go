package extract

import (
	nethtml "html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/test01203/hebrew-cookbook-extractor/models"
)

// ingredientChains are evaluated in order; the first strategy yielding a
// non-empty list wins. The order is heuristic, not load-bearing: cheap
// metadata first, structured markup next, free-text paragraph scanning
// last.
var ingredientChains = []listHeuristic{
	ingredientsFromMetaDescription,
	ingredientsFromBodyMarker,
	ingredientsFromStructuredContainer,
	ingredientsFromParagraphScan,
}

// ingredientsFromMetaDescription splits the social-preview description at
// the preparation marker and reads the ingredient half. Declines when the
// description has no marker, otherwise the whole blurb would be dumped in.
func ingredientsFromMetaDescription(ctx *pageContext) ([]string, bool) {
	description, ok := ctx.doc.MetaProperty("og:description")
	if !ok {
		description, ok = ctx.doc.MetaName("description")
	}
	if !ok {
		return nil, false
	}

	before, _, found := splitAtMarker(description, ctx.vocab.InstructionMarkers)
	if !found {
		return nil, false
	}

	var items []string
	for _, line := range splitLines(before, "\n", ",") {
		line = stripIngredientsLabel(line, ctx.vocab)
		if line == "" || isIngredientsLabel(line, ctx.vocab) {
			continue
		}
		items = append(items, line)
	}
	return items, len(items) > 0
}

// stripIngredientsLabel removes a leading "Ingredients:" label so a line
// like "Ingredients: 2 eggs" keeps its payload.
func stripIngredientsLabel(line string, vocab *Vocabulary) string {
	lower := strings.ToLower(line)
	label := strings.ToLower(vocab.IngredientsLabel)
	if strings.HasPrefix(lower, label) {
		return strings.TrimSpace(strings.TrimLeft(line[len(label):], ": -"))
	}
	return strings.TrimSpace(line)
}

// ingredientsFromBodyMarker scans the main content body for an
// "Ingredients:" paragraph and collects following lines until the
// preparation-steps marker.
func ingredientsFromBodyMarker(ctx *pageContext) ([]string, bool) {
	paragraphs := ctx.doc.Find(".entry-content p, article p, .post-content p")
	if paragraphs.Length() == 0 {
		return nil, false
	}

	var items []string
	collecting := false
	done := false

	paragraphs.EachWithBreak(func(_ int, p *goquery.Selection) bool {
		for _, line := range paragraphLines(p) {
			if done {
				return false
			}
			if containsAny(line, ctx.vocab.InstructionMarkers) || strings.Contains(strings.ToLower(line), ctx.vocab.PrepMarker) {
				done = true
				return false
			}
			if !collecting {
				if isIngredientsLabel(line, ctx.vocab) || containsAny(line, []string{ctx.vocab.IngredientsLabel}) {
					collecting = true
				}
				continue
			}
			if line != "" {
				items = append(items, line)
			}
		}
		return true
	})

	return items, len(items) > 0
}

// ingredientsFromStructuredContainer reads a dedicated ingredients block:
// one or more sub-lists, each optionally preceded by a section heading,
// plus an optional pan-size element emitted as a one-item pseudo-section.
func ingredientsFromStructuredContainer(ctx *pageContext) ([]string, bool) {
	container := ctx.doc.Find(".ingredients, .recipe-ingredients").First()
	if container.Length() == 0 {
		return nil, false
	}

	var sections []models.IngredientSection

	container.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		var items []string
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) == 0 {
			return
		}
		sections = append(sections, models.IngredientSection{
			Title: sectionTitleFor(list),
			Items: items,
		})
	})

	// A container with loose items and no sub-lists is one unnamed section.
	if len(sections) == 0 {
		var items []string
		container.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) > 0 {
			sections = append(sections, models.IngredientSection{Items: items})
		}
	}

	if pan := strings.TrimSpace(container.Find(".pan-size, .dish-size").First().Text()); pan != "" {
		sections = append(sections, models.IngredientSection{
			Title: ctx.vocab.PanSizeTitle,
			Items: []string{pan},
		})
	}

	flattened := FlattenSections(sections)
	return flattened, len(flattened) > 0
}

// sectionTitleFor finds the heading immediately before a sub-list.
func sectionTitleFor(list *goquery.Selection) string {
	prev := list.Prev()
	switch goquery.NodeName(prev) {
	case "h2", "h3", "h4", "h5", "strong", "p":
		return strings.TrimSpace(prev.Text())
	}
	return ""
}

// ingredientsFromParagraphScan is the unstructured fallback: walk
// right-to-left paragraphs, open a section on each short header line from
// the known vocabulary, and collect non-trivial lines until the
// preparation marker appears.
func ingredientsFromParagraphScan(ctx *pageContext) ([]string, bool) {
	paragraphs := ctx.doc.Find(`p[dir="rtl"]`)
	if paragraphs.Length() == 0 {
		paragraphs = ctx.doc.Find("p")
	}

	var sections []models.IngredientSection
	current := -1
	scanning := false

	paragraphs.EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			return true
		}

		if strings.Contains(strings.ToLower(text), ctx.vocab.PrepMarker) {
			return false
		}

		if len([]rune(text)) < 30 && containsAny(text, ctx.vocab.SectionHeaders) {
			sections = append(sections, models.IngredientSection{Title: text})
			current = len(sections) - 1
			scanning = true
			return true
		}

		if scanning && len([]rune(text)) > 2 && !containsAny(text, ctx.vocab.Boilerplate) {
			sections[current].Items = append(sections[current].Items, text)
		}
		return true
	})

	flattened := FlattenSections(sections)
	return flattened, len(flattened) > 0
}

// defaultSectionTitles are the labels of the unnamed ingredient section;
// its items are flattened without a header line.
var defaultSectionTitles = map[string]struct{}{
	"":            {},
	"ingredients": {},
	"מצרכים":      {},
}

// FlattenSections folds ingredient sections into the final flat list:
// the default section contributes items unprefixed, every other section
// contributes "<title>:" followed by its items, in encounter order.
func FlattenSections(sections []models.IngredientSection) []string {
	var flattened []string
	for _, section := range sections {
		if len(section.Items) == 0 {
			continue
		}
		title := strings.TrimSuffix(strings.TrimSpace(section.Title), ":")
		if _, isDefault := defaultSectionTitles[strings.ToLower(title)]; !isDefault {
			flattened = append(flattened, title+":")
		}
		flattened = append(flattened, section.Items...)
	}
	return flattened
}

// isIngredientsLabel reports whether a line is just the bare
// "Ingredients:" label rather than an actual ingredient.
func isIngredientsLabel(line string, vocab *Vocabulary) bool {
	trimmed := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	return trimmed == strings.TrimSuffix(strings.ToLower(vocab.IngredientsLabel), ":") ||
		trimmed == strings.ToLower(vocab.DefaultSectionTitle)
}

// splitLines splits text on each separator in turn and trims the pieces.
func splitLines(text string, separators ...string) []string {
	lines := []string{text}
	for _, sep := range separators {
		var next []string
		for _, line := range lines {
			next = append(next, strings.Split(line, sep)...)
		}
		lines = next
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

// splitAtMarker splits text at the earliest case-insensitive occurrence
// of any marker phrase.
func splitAtMarker(text string, markers []string) (before, after string, found bool) {
	lower := strings.ToLower(text)
	cut := -1
	cutLen := 0
	for _, marker := range markers {
		idx := strings.Index(lower, strings.ToLower(marker))
		if idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
			cutLen = len(marker)
		}
	}
	if cut < 0 {
		return text, "", false
	}
	return text[:cut], text[cut+cutLen:], true
}

var breakTag = regexp.MustCompile(`(?i)<br\s*/?>`)
var anyTag = regexp.MustCompile(`<[^>]+>`)

// paragraphLines splits one paragraph into visual lines. goquery's Text()
// flattens <br> breaks, so the split has to happen on the markup.
func paragraphLines(p *goquery.Selection) []string {
	html, err := p.Html()
	if err != nil {
		return splitLines(p.Text(), "\n")
	}
	html = breakTag.ReplaceAllString(html, "\n")
	html = anyTag.ReplaceAllString(html, "")
	return splitLines(nethtml.UnescapeString(html), "\n")
}
