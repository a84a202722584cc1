// Package recipes implements the CLI actions of the recipe book.
package recipes

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/test01203/hebrew-cookbook-extractor/internal/importer"
	"github.com/test01203/hebrew-cookbook-extractor/models"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/caching"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/fetcher"
	"github.com/test01203/hebrew-cookbook-extractor/pkg/store"
)

// newLogger builds the CLI logger; --quiet keeps only errors.
func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// loadConfig reads the optional YAML config file.
func loadConfig(c *cli.Context) (*models.Config, error) {
	return models.LoadConfig(c.String("config"))
}

// openStore opens the recipe database, honoring --db, then the config
// file, then the default location next to the binary.
func openStore(c *cli.Context, config *models.Config) (*store.Store, error) {
	if path := c.String("db"); path != "" {
		return store.OpenPath(path)
	}
	if config != nil && config.DBPath != "" {
		return store.OpenPath(config.DBPath)
	}
	return store.Open()
}

// newImporter wires the import pipeline from CLI flags.
func newImporter(c *cli.Context, config *models.Config, recipeStore *store.Store, logger *slog.Logger) (*importer.Importer, error) {
	cacheDir := c.String("cache-dir")
	if cacheDir == "" && config != nil {
		cacheDir = config.CacheDir
	}

	var cache *caching.Cache
	if cacheDir != "" {
		maxAge, err := time.ParseDuration(c.String("max-age"))
		if err != nil {
			return nil, fmt.Errorf("invalid max-age duration: %w", err)
		}
		cache, err = caching.NewCache(cacheDir, maxAge)
		if err != nil {
			return nil, err
		}
	}

	return importer.New(fetcher.NewFetcher(), cache, recipeStore, logger), nil
}

// ImportAction imports one or more URLs sequentially.
func ImportAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	urls := c.Args().Slice()
	if c.IsSet("urls") {
		urls = append(urls, strings.Split(c.String("urls"), ",")...)
	}
	for i := range urls {
		urls[i] = strings.TrimSpace(urls[i])
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  cookbook import "https://example.com/recipe/1"`)
		fmt.Fprintln(os.Stderr, `  cookbook import --urls "https://a.com/r1,https://b.com/r2"`)
		os.Exit(1)
	}

	recipeStore, err := openStore(c, config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer recipeStore.Close()

	imp, err := newImporter(c, config, recipeStore, logger)
	if err != nil {
		return err
	}

	results, imported := imp.ImportAll(urls, func(done, total int) {
		fmt.Fprintf(os.Stderr, "Imported %d/%d\n", done, total)
	})

	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("failed   %s\n", result.URL)
			continue
		}
		fmt.Printf("imported %-20s %s\n", result.Recipe.ID, result.Recipe.Title)
	}
	fmt.Printf("\n%d/%d recipes imported\n", imported, len(urls))

	if imported == 0 {
		os.Exit(2)
	}
	if imported < len(urls) {
		os.Exit(1)
	}
	return nil
}

// DiscoverAction lists importable recipe links from a configured source.
func DiscoverAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	if len(config.Sources) == 0 {
		return fmt.Errorf("no sources configured; add a sources list to %s", c.String("config"))
	}

	sourceID := c.String("source")
	var source *models.Source
	for i := range config.Sources {
		if sourceID == "" || config.Sources[i].ID == sourceID {
			source = &config.Sources[i]
			break
		}
	}
	if source == nil {
		return fmt.Errorf("unknown source: %s", sourceID)
	}

	recipeStore, err := openStore(c, config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer recipeStore.Close()

	imp, err := newImporter(c, config, recipeStore, logger)
	if err != nil {
		return err
	}

	previews, err := imp.DiscoverRecipes(*source)
	if err != nil {
		return err
	}

	if len(previews) == 0 {
		fmt.Printf("No recipe links found at %s\n", source.URL)
		return nil
	}

	fmt.Printf("Recipes at %s (%s):\n", source.Name, source.URL)
	for i, preview := range previews {
		fmt.Printf("%3d. %s\n     %s\n", i+1, preview.Title, preview.URL)
	}
	fmt.Printf("\nTotal: %d links\n", len(previews))
	fmt.Printf("\nTip: import with 'cookbook import --urls \"<url>,<url>\"'\n")
	return nil
}

// ListAction prints the recipe book, optionally filtered.
func ListAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	recipeStore, err := openStore(c, config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer recipeStore.Close()

	recipes := recipeStore.Search(c.String("search"), c.String("category"))
	if len(recipes) == 0 {
		fmt.Println("No recipes found")
		return nil
	}

	fmt.Printf("%-20s %-30s %-10s %-20s\n", "ID", "Title", "Category", "Source")
	fmt.Println(strings.Repeat("-", 84))
	for _, recipe := range recipes {
		fmt.Printf("%-20s %-30s %-10s %-20s\n",
			recipe.ID, truncate(recipe.Title, 30), recipe.Category, recipe.Source)
	}
	fmt.Printf("\nTotal: %d recipes\n", len(recipes))
	return nil
}

// ShowAction prints one recipe in full as YAML.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: cookbook show <id>")
	}

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	recipeStore, err := openStore(c, config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer recipeStore.Close()

	recipe, ok := recipeStore.Get(c.Args().First())
	if !ok {
		return fmt.Errorf("recipe not found: %s", c.Args().First())
	}

	data, err := yaml.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// EditAction replaces fields of an existing recipe from flags.
func EditAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: cookbook edit <id> [--title ...] [--category ...]")
	}

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	recipeStore, err := openStore(c, config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer recipeStore.Close()

	id := c.Args().First()
	recipe, ok := recipeStore.Get(id)
	if !ok {
		return fmt.Errorf("recipe not found: %s", id)
	}

	parsed := recipe.ParsedRecipe
	if c.IsSet("title") {
		parsed.Title = c.String("title")
	}
	if c.IsSet("category") {
		parsed.Category = c.String("category")
	}
	if c.IsSet("image") {
		parsed.Image = c.String("image")
	}
	if c.IsSet("prep-time") {
		parsed.PrepTime = c.String("prep-time")
	}
	if c.IsSet("author") {
		parsed.Author = c.String("author")
	}
	if c.IsSet("credits") {
		parsed.Credits = c.String("credits")
	}
	if c.IsSet("ingredients") {
		parsed.Ingredients = splitList(c.String("ingredients"))
	}
	if c.IsSet("instructions") {
		parsed.Instructions = splitList(c.String("instructions"))
	}

	if err := recipeStore.Update(id, parsed); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", id)
	return nil
}

// DeleteAction removes a recipe by id.
func DeleteAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: cookbook delete <id>")
	}

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	recipeStore, err := openStore(c, config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer recipeStore.Close()

	id := c.Args().First()
	if err := recipeStore.Delete(id); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", id)
	return nil
}

// splitList parses a flag value holding several lines, separated by
// newlines or semicolons.
func splitList(value string) []string {
	var items []string
	for _, piece := range strings.FieldsFunc(value, func(r rune) bool {
		return r == '\n' || r == ';'
	}) {
		if piece = strings.TrimSpace(piece); piece != "" {
			items = append(items, piece)
		}
	}
	return items
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
