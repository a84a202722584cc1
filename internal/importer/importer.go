// Package importer drives recipe imports: fetch, strategy selection,
// extraction and persistence, one URL at a time.
package importer

import (
	"fmt"
	"log/slog"

	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/caching"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/classify"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/extract"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/store"
)

// Fetcher is the page-retrieval boundary. The importer never calls the
// network directly.
type Fetcher interface {
	FetchPage(url string) (*models.RawPayload, error)
}

// Progress is invoked after each item of a bulk import with the running
// done count and the total.
type Progress func(done, total int)

// Result is the outcome of one imported URL.
type Result struct {
	URL    string
	Recipe *models.Recipe
	Err    error
}

type Importer struct {
	fetcher  Fetcher
	cache    *caching.Cache
	pipeline *extract.Pipeline
	store    *store.Store
	logger   *slog.Logger
}

// New wires an importer. The cache is optional; without one every import
// refetches.
func New(fetcher Fetcher, cache *caching.Cache, recipeStore *store.Store, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		fetcher:  fetcher,
		cache:    cache,
		pipeline: extract.NewPipeline(logger),
		store:    recipeStore,
		logger:   logger,
	}
}

// ImportOne fetches, parses and stores a single URL.
func (imp *Importer) ImportOne(url string) (models.Recipe, error) {
	payload, err := imp.fetch(url)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	var parsed models.ParsedRecipe
	switch classify.DetectStrategy(url, payload) {
	case classify.StrategyShortVideo:
		parsed = imp.pipeline.ParseShortVideoRecipe(payload, url)
	default:
		parsed = imp.pipeline.ParseRecipe(payload, url)
	}

	recipe, err := imp.store.Append(parsed)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to store recipe: %w", err)
	}
	return recipe, nil
}

// ImportAll runs a bulk import sequentially. Each URL is independent: a
// fetch failure is recorded, the loop continues, and progress is reported
// after every item. Returns per-URL results and the success count.
func (imp *Importer) ImportAll(urls []string, progress Progress) ([]Result, int) {
	results := make([]Result, 0, len(urls))
	imported := 0

	for i, url := range urls {
		recipe, err := imp.ImportOne(url)
		if err != nil {
			imp.logger.Warn("skipping URL", "url", url, "error", err)
			results = append(results, Result{URL: url, Err: err})
		} else {
			imported++
			results = append(results, Result{URL: url, Recipe: &recipe})
		}

		if progress != nil {
			progress(i+1, len(urls))
		}
	}

	return results, imported
}

// fetch goes through the cache when one is configured.
func (imp *Importer) fetch(url string) (*models.RawPayload, error) {
	if imp.cache != nil {
		if data, hit := imp.cache.Get(url); hit {
			return &models.RawPayload{
				SourceURL: url,
				HTML:      string(data),
				Status:    models.FetchOK,
			}, nil
		}
	}

	payload, err := imp.fetcher.FetchPage(url)
	if err != nil {
		return nil, err
	}

	if imp.cache != nil {
		if err := imp.cache.Set(url, []byte(payload.HTML)); err != nil {
			imp.logger.Warn("failed to cache payload", "url", url, "error", err)
		}
	}
	return payload, nil
}
