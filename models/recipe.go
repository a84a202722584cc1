// Package models defines the data types shared across the extraction
// pipeline, the store and the CLI.
package models

// FetchStatus describes how much of a page the fetcher managed to retrieve.
type FetchStatus string

const (
	FetchOK      FetchStatus = "ok"
	FetchPartial FetchStatus = "partial"
	FetchError   FetchStatus = "error"
)

// RawPayload is the fetched content of one URL. It is produced per request
// and discarded once parsing is done.
type RawPayload struct {
	SourceURL string
	HTML      string
	Status    FetchStatus
}

// IngredientSection is a named sub-group of ingredient lines, used as an
// intermediate shape before flattening into the final ingredient list.
type IngredientSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ParsedRecipe is the normalized output of the extraction pipeline.
// Required fields (Title, Image, Category, Source) are never empty; the
// assembler substitutes defaults on every miss.
type ParsedRecipe struct {
	Title          string   `json:"title"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	Image          string   `json:"image"`
	Category       string   `json:"category"`
	PrepTime       string   `json:"prepTime,omitempty"`
	Source         string   `json:"source"`
	SourceURL      string   `json:"sourceUrl"`
	YoutubeURL     string   `json:"youtubeUrl,omitempty"`
	TiktokURL      string   `json:"tiktokUrl,omitempty"`
	Author         string   `json:"author,omitempty"`
	Credits        string   `json:"credits,omitempty"`
	SiteCategories []string `json:"siteCategories"`
}

// Recipe is a persisted ParsedRecipe with its store identifier.
type Recipe struct {
	ID string `json:"id"`
	ParsedRecipe
}

// RecipePreview is a discovered-but-not-yet-imported recipe link from a
// source index page.
type RecipePreview struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
