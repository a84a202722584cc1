// Package store persists the recipe book. The whole list lives as one
// JSON value under a single key in a local SQLite database: loaded once
// at open, rewritten on every mutation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/test01203/hebrew-cookbook-extractor/models"
)

const DefaultDBName = "cookbook.db"

const recipesKey = "recipes"

type Store struct {
	db      *sql.DB
	path    string
	recipes []models.Recipe
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the recipe database next to the binary.
func Open() (*Store, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return OpenPath(filepath.Join(filepath.Dir(execPath), DefaultDBName))
}

// OpenPath opens or creates the recipe database at an explicit path and
// loads the recipe list.
func OpenPath(dbPath string) (*Store, error) {
	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	store := &Store{
		db:   sqlDB,
		path: dbPath,
	}

	if err := store.ensureSchemaExists(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := store.load(); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) ensureSchemaExists() error {
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	return s.db.Close()
}

// load reads the recipe list once; mutations afterwards work on the
// in-memory list and rewrite the stored value.
func (s *Store) load() error {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", recipesKey).Scan(&value)
	if err == sql.ErrNoRows {
		s.recipes = []models.Recipe{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}

	if err := json.Unmarshal([]byte(value), &s.recipes); err != nil {
		return fmt.Errorf("failed to decode stored recipes: %w", err)
	}
	return nil
}

// flush rewrites the serialized list under the recipes key.
func (s *Store) flush() error {
	value, err := json.Marshal(s.recipes)
	if err != nil {
		return fmt.Errorf("failed to encode recipes: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		recipesKey, string(value))
	if err != nil {
		return fmt.Errorf("failed to persist recipes: %w", err)
	}
	return nil
}

// List returns all recipes in insertion order.
func (s *Store) List() []models.Recipe {
	recipes := make([]models.Recipe, len(s.recipes))
	copy(recipes, s.recipes)
	return recipes
}

// Get returns one recipe by identifier.
func (s *Store) Get(id string) (models.Recipe, bool) {
	for _, recipe := range s.recipes {
		if recipe.ID == id {
			return recipe, true
		}
	}
	return models.Recipe{}, false
}

// Append stores a parsed recipe under a fresh identifier.
func (s *Store) Append(parsed models.ParsedRecipe) (models.Recipe, error) {
	recipe := models.Recipe{
		ID:           NewID(),
		ParsedRecipe: parsed,
	}
	s.recipes = append(s.recipes, recipe)
	if err := s.flush(); err != nil {
		s.recipes = s.recipes[:len(s.recipes)-1]
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Update replaces all fields of an existing recipe.
func (s *Store) Update(id string, parsed models.ParsedRecipe) error {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			previous := s.recipes[i].ParsedRecipe
			s.recipes[i].ParsedRecipe = parsed
			if err := s.flush(); err != nil {
				s.recipes[i].ParsedRecipe = previous
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("recipe not found: %s", id)
}

// Delete removes a recipe by identifier.
func (s *Store) Delete(id string) error {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			removed := s.recipes[i]
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			if err := s.flush(); err != nil {
				s.recipes = append(s.recipes[:i], append([]models.Recipe{removed}, s.recipes[i:]...)...)
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("recipe not found: %s", id)
}

// Search filters by case-insensitive title substring and optional exact
// category.
func (s *Store) Search(term, category string) []models.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))

	var matches []models.Recipe
	for _, recipe := range s.recipes {
		if term != "" && !strings.Contains(strings.ToLower(recipe.Title), term) {
			continue
		}
		if category != "" && recipe.Category != category {
			continue
		}
		matches = append(matches, recipe)
	}
	return matches
}
