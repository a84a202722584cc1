// Package extract converts fetched page markup into a normalized recipe
// record. Every field runs an ordered fallback chain of structural
// heuristics; extraction quality is probabilistic, so a miss degrades to a
// default instead of failing the parse.
package extract

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/classify"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/htmldoc"
)

// Defaults substituted when extraction misses. The app is Hebrew-first;
// the placeholders are the localized strings the original book shows.
const (
	DefaultTitle           = "מתכון חדש"
	DefaultShortVideoTitle = "מתכון טיקטוק"
	PlaceholderImage       = "/placeholder.svg"
	UnknownSource          = "לא ידוע"
	ShortVideoSource       = "TikTok"
	ShortVideoSiteCategory = "tiktok"
)

// pageContext carries everything a field heuristic may consult for one
// parse. It is owned by a single ParseRecipe call.
type pageContext struct {
	doc       *htmldoc.Document
	article   *readability.Article
	sourceURL string
	vocab     *Vocabulary
}

// textHeuristic and listHeuristic are single links of a fallback chain:
// pure functions that either produce a plausible value or decline.
type (
	textHeuristic func(*pageContext) (string, bool)
	listHeuristic func(*pageContext) ([]string, bool)
)

// firstText evaluates a chain in priority order and returns the first hit.
func firstText(ctx *pageContext, chain []textHeuristic) (string, bool) {
	for _, heuristic := range chain {
		if value, ok := heuristic(ctx); ok {
			return value, true
		}
	}
	return "", false
}

// firstList is firstText for sequence-valued fields.
func firstList(ctx *pageContext, chain []listHeuristic) ([]string, bool) {
	for _, heuristic := range chain {
		if values, ok := heuristic(ctx); ok && len(values) > 0 {
			return values, true
		}
	}
	return nil, false
}

// Pipeline runs the extraction strategies. It holds no per-parse state,
// so one Pipeline can serve any number of sequential parses.
type Pipeline struct {
	categories *classify.CategoryClassifier
	logger     *slog.Logger
}

// NewPipeline builds a Pipeline with the default category table.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		categories: classify.NewCategoryClassifier(classify.DefaultCategories),
		logger:     logger,
	}
}

// ParseRecipe extracts a recipe from a generic HTML payload. It is a
// total function: structural parse failures and panics both produce the
// all-default record tagged with sourceURL, never an error.
func (p *Pipeline) ParseRecipe(payload *models.RawPayload, sourceURL string) (recipe models.ParsedRecipe) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("recipe parse panicked", "url", sourceURL, "panic", r)
			recipe = p.defaultRecipe(sourceURL)
		}
	}()

	if payload == nil {
		return p.defaultRecipe(sourceURL)
	}

	doc, err := htmldoc.Parse(payload.HTML)
	if err != nil {
		p.logger.Warn("payload could not be parsed into a document", "url", sourceURL, "error", err)
		return p.defaultRecipe(sourceURL)
	}

	ctx := &pageContext{
		doc:       doc,
		article:   parseArticle(payload.HTML, sourceURL),
		sourceURL: sourceURL,
		vocab:     VocabularyFor(doc.Find("body").Text()),
	}

	title, ok := firstText(ctx, titleChain)
	if !ok {
		title = DefaultTitle
	} else if title = CleanTitle(title); title == "" {
		title = DefaultTitle
	}

	image, ok := firstText(ctx, imageChain)
	if ok {
		image = resolveImageURL(image, sourceURL)
	} else {
		image = PlaceholderImage
	}

	ingredients, _ := firstList(ctx, ingredientChains)
	if ingredients == nil {
		ingredients = []string{}
	}
	instructions, _ := firstList(ctx, instructionChains)
	if instructions == nil {
		instructions = []string{}
	}
	author, credits := extractCredits(ctx)

	return models.ParsedRecipe{
		Title:          title,
		Ingredients:    ingredients,
		Instructions:   instructions,
		Image:          image,
		Category:       p.categories.Classify(title, payload.HTML),
		PrepTime:       extractPrepTime(ctx),
		Source:         sourceHost(sourceURL),
		SourceURL:      sourceURL,
		YoutubeURL:     extractVideoEmbed(ctx),
		Author:         author,
		Credits:        credits,
		SiteCategories: extractSiteCategories(ctx),
	}
}

// defaultRecipe is the all-default record the never-block-the-caller
// contract demands on ParseFailure.
func (p *Pipeline) defaultRecipe(sourceURL string) models.ParsedRecipe {
	return models.ParsedRecipe{
		Title:          DefaultTitle,
		Ingredients:    []string{},
		Instructions:   []string{},
		Image:          PlaceholderImage,
		Category:       classify.DefaultCategory,
		Source:         sourceHost(sourceURL),
		SourceURL:      sourceURL,
		SiteCategories: []string{},
	}
}

// parseArticle runs readability over the raw markup for metadata
// enrichment (title, byline, lead image). A nil article just removes
// those heuristics from the chains.
func parseArticle(html, sourceURL string) *readability.Article {
	parsedURL, err := url.Parse(sourceURL)
	if err != nil {
		return nil
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil
	}
	return &article
}

// sourceHost derives the display source: hostname with a leading "www."
// stripped, or the unknown-source placeholder when the URL is unusable.
func sourceHost(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Hostname() == "" {
		return UnknownSource
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// resolveImageURL makes a candidate image URL absolute against the page
// URL. Unresolvable candidates fall back to the placeholder asset.
func resolveImageURL(image, sourceURL string) string {
	if image == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	base, err := url.Parse(sourceURL)
	if err != nil || !base.IsAbs() {
		return PlaceholderImage
	}
	ref, err := url.Parse(image)
	if err != nil {
		return PlaceholderImage
	}
	return base.ResolveReference(ref).String()
}
