package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/test01203/hebrew-cookbook-extractor/internal/recipes"
)

func main() {
	app := &cli.App{
		Name:  "cookbook",
		Usage: "import recipe pages into a local recipe book",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "cookbook.yaml", Usage: "path to the YAML config file"},
			&cli.StringFlag{Name: "db", Usage: "path to the recipe database (default: next to the binary)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
		},
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "fetch and parse recipe URLs into the book",
				ArgsUsage: "[url ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "comma-separated list of recipe URLs"},
					&cli.StringFlag{Name: "cache-dir", Usage: "directory for the fetch cache (disabled when empty)"},
					&cli.StringFlag{Name: "max-age", Value: "24h", Usage: "fetch cache TTL"},
				},
				Action: recipes.ImportAction,
			},
			{
				Name:  "discover",
				Usage: "list importable recipe links from a configured source",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Usage: "source id from the config file (default: first source)"},
					&cli.StringFlag{Name: "cache-dir", Usage: "directory for the fetch cache (disabled when empty)"},
					&cli.StringFlag{Name: "max-age", Value: "24h", Usage: "fetch cache TTL"},
				},
				Action: recipes.DiscoverAction,
			},
			{
				Name:  "list",
				Usage: "list stored recipes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Usage: "filter by title substring"},
					&cli.StringFlag{Name: "category", Usage: "filter by category"},
				},
				Action: recipes.ListAction,
			},
			{
				Name:      "show",
				Usage:     "print one recipe in full",
				ArgsUsage: "<id>",
				Action:    recipes.ShowAction,
			},
			{
				Name:      "edit",
				Usage:     "replace fields of a stored recipe",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "image"},
					&cli.StringFlag{Name: "prep-time"},
					&cli.StringFlag{Name: "author"},
					&cli.StringFlag{Name: "credits"},
					&cli.StringFlag{Name: "ingredients", Usage: "ingredient lines separated by ';' or newlines"},
					&cli.StringFlag{Name: "instructions", Usage: "instruction lines separated by ';' or newlines"},
				},
				Action: recipes.EditAction,
			},
			{
				Name:      "delete",
				Usage:     "remove a recipe",
				ArgsUsage: "<id>",
				Action:    recipes.DeleteAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.SetFlags(0)
		log.Fatal(fmt.Errorf("cookbook: %w", err))
	}
}
