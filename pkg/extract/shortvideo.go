package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/classify"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/htmldoc"
)

// shortVideoContent is what the state-blob extraction yields: the
// creator caption doubles as title and recipe text.
type shortVideoContent struct {
	title       string
	description string
	embedURL    string
}

var watchURLVideoID = regexp.MustCompile(`video/(\d+)`)

// ParseShortVideoRecipe extracts a recipe from a short-video page: the
// embedded state blob (or URL+meta fallback) yields the caption, and the
// caption is split into ingredients and instructions. Total function,
// same contract as ParseRecipe.
func (p *Pipeline) ParseShortVideoRecipe(payload *models.RawPayload, sourceURL string) (recipe models.ParsedRecipe) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("short-video parse panicked", "url", sourceURL, "panic", r)
			recipe = p.defaultShortVideoRecipe(sourceURL)
		}
	}()

	if payload == nil {
		return p.defaultShortVideoRecipe(sourceURL)
	}

	doc, err := htmldoc.Parse(payload.HTML)
	if err != nil {
		p.logger.Warn("short-video payload could not be parsed into a document", "url", sourceURL, "error", err)
		return p.defaultShortVideoRecipe(sourceURL)
	}

	content, ok := extractShortVideoContent(doc, sourceURL)
	if !ok {
		return p.defaultShortVideoRecipe(sourceURL)
	}

	vocab := VocabularyFor(content.description)
	ingredients, instructions := SplitCaption(content.description, vocab)

	title := CleanTitle(content.title)
	if title == "" {
		title = DefaultShortVideoTitle
	}

	return models.ParsedRecipe{
		Title:          title,
		Ingredients:    ingredients,
		Instructions:   instructions,
		Image:          PlaceholderImage,
		Category:       p.categories.Classify(title, content.description),
		Source:         ShortVideoSource,
		SourceURL:      sourceURL,
		TiktokURL:      content.embedURL,
		SiteCategories: []string{ShortVideoSiteCategory},
	}
}

func (p *Pipeline) defaultShortVideoRecipe(sourceURL string) models.ParsedRecipe {
	return models.ParsedRecipe{
		Title:          DefaultShortVideoTitle,
		Ingredients:    []string{},
		Instructions:   []string{},
		Image:          PlaceholderImage,
		Category:       classify.DefaultCategory,
		Source:         ShortVideoSource,
		SourceURL:      sourceURL,
		SiteCategories: []string{ShortVideoSiteCategory},
	}
}

// extractShortVideoContent locates the platform state blob. The legacy
// state object and the newer item-info object ship different embed path
// versions; each form is emitted by the variant that carries it.
func extractShortVideoContent(doc *htmldoc.Document, sourceURL string) (*shortVideoContent, bool) {
	// Legacy state object keyed by a single unknown item id.
	if raw := doc.Find("#SIGI_STATE").Text(); strings.TrimSpace(raw) != "" {
		if state, ok := htmldoc.DecodeJSON(raw); ok {
			if modules, ok := state.Lookup("ItemModule"); ok {
				if item, ok := modules.AnyChild(); ok {
					if id, ok := item.Str("id"); ok {
						description, _ := item.Str("desc")
						return &shortVideoContent{
							title:       captionFirstLine(description),
							description: description,
							embedURL:    "https://www.tiktok.com/embed/" + id,
						}, true
					}
				}
			}
		}
	}

	// Newer pages ship a JSON script with a known item-info path.
	var content *shortVideoContent
	doc.Find(`script[type="application/json"]`).EachWithBreak(func(_ int, script *goquery.Selection) bool {
		state, ok := htmldoc.DecodeJSON(script.Text())
		if !ok {
			return true
		}
		item, ok := state.Lookup("props", "pageProps", "itemInfo", "itemStruct")
		if !ok {
			return true
		}
		id, ok := item.Str("id")
		if !ok {
			return true
		}
		description, _ := item.Str("desc")
		content = &shortVideoContent{
			title:       captionFirstLine(description),
			description: description,
			embedURL:    "https://www.tiktok.com/embed/v2/" + id,
		}
		return false
	})
	if content != nil {
		return content, true
	}

	// No state blob: derive the id from the watch URL and read meta tags.
	if matches := watchURLVideoID.FindStringSubmatch(sourceURL); len(matches) > 1 {
		title, _ := doc.MetaProperty("og:title")
		description, _ := doc.MetaProperty("og:description")
		if title == "" {
			title = description
		}
		return &shortVideoContent{
			title:       title,
			description: description,
			embedURL:    "https://www.tiktok.com/embed/" + matches[1],
		}, true
	}

	return nil, false
}

// captionFirstLine keeps the caption headline as title material; the
// body lines belong to the ingredient and instruction split.
func captionFirstLine(description string) string {
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

var captionBullet = regexp.MustCompile(`^[-•*]|^\d+[.)]?`)

// SplitCaption classifies caption lines into ingredients and
// instructions. The first pass trusts explicit section markers; captions
// without them get a best-effort shape-based split, because creator text
// is free-form and an empty result helps nobody.
func SplitCaption(description string, vocab *Vocabulary) (ingredients, instructions []string) {
	var lines []string
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	// First pass: explicit section markers.
	section := ""
	for _, line := range lines {
		if containsAny(line, vocab.IngredientMarkers) && len([]rune(line)) < 30 {
			section = "ingredients"
			continue
		}
		if containsAny(line, vocab.InstructionMarkers) && len([]rune(line)) < 30 {
			section = "instructions"
			continue
		}
		if len([]rune(line)) <= 1 {
			continue
		}
		switch section {
		case "ingredients":
			ingredients = append(ingredients, line)
		case "instructions":
			instructions = append(instructions, line)
		}
	}
	if len(ingredients) > 0 || len(instructions) > 0 {
		return ingredients, instructions
	}

	// Second pass: classify by line shape.
	patternSeen := false
	for _, line := range lines {
		runeCount := len([]rune(line))
		switch {
		case captionBullet.MatchString(line) || vocab.UnitPattern.MatchString(line):
			ingredients = append(ingredients, line)
			patternSeen = true
		case patternSeen && runeCount > 10:
			instructions = append(instructions, line)
		case !patternSeen && runeCount > 1:
			ingredients = append(ingredients, line)
		}
	}
	return ingredients, instructions
}
