// Package testutil provides shared test helpers for backing files and stores.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/starford/recipebook/internal/models"
	"github.com/starford/recipebook/internal/recipes"
	"github.com/starford/recipebook/internal/storage"
)

// Logger returns a logger that discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// TestFile creates a backing file provider in a temporary directory. The file
// itself is not created.
func TestFile(t *testing.T, name string) *storage.File {
	t.Helper()
	f, err := storage.NewFile(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// TestStore opens an empty store backed by a temporary YAML file.
func TestStore(t *testing.T) (*recipes.Store, *storage.File) {
	t.Helper()
	f := TestFile(t, "recipes.yaml")
	s, err := recipes.Open(f, Logger())
	if err != nil {
		t.Fatal(err)
	}
	return s, f
}

// Recipe builds a recipe from ingredient pairs (name, quantity, name, ...).
func Recipe(rating int, tags []string, ingredients ...string) *models.Recipe {
	r := models.New()
	for i := 0; i+1 < len(ingredients); i += 2 {
		r.Ingredients.Set(ingredients[i], ingredients[i+1])
	}
	r.Tags = append(r.Tags, tags...)
	r.Rating = rating
	return r
}

// Seed adds each recipe to s, failing the test on error.
func Seed(t *testing.T, s *recipes.Store, names []string, rs ...*models.Recipe) {
	t.Helper()
	for i, name := range names {
		if _, err := s.Add(name, rs[i]); err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
	}
}
