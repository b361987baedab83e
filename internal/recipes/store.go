// Package recipes implements the recipe store: an ordered, file-backed
// mapping from recipe name to recipe, plus the editing operations the
// console drives.
package recipes

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/recipebook/internal/apperr"
	"github.com/starford/recipebook/internal/checksum"
	"github.com/starford/recipebook/internal/codec"
	"github.com/starford/recipebook/internal/models"
	"github.com/starford/recipebook/internal/storage"
)

// Cancel is the name-prompt answer that backs out of an operation.
const Cancel = "back"

// corruptSuffix is appended to a backing file that could not be decoded.
const corruptSuffix = ".corrupt"

// Store owns the recipe book for the lifetime of a session.
type Store struct {
	backend storage.Provider
	format  codec.Format
	logger  *slog.Logger
	book    *models.Book

	// checksum of the bytes last read from or written to backend; empty
	// when no file is expected on disk.
	checksum string
}

// Open creates a store and loads it from backend. A missing or undecodable
// backing file yields an empty store; only other read failures are returned.
func Open(backend storage.Provider, logger *slog.Logger) (*Store, error) {
	format, err := codec.FormatFor(backend.Path())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		backend: backend,
		format:  format,
		logger:  logger,
		book:    models.NewBook(),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	path := s.backend.Path()
	data, err := s.backend.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("store: no backing file, starting empty", slog.String("path", path))
			return nil
		}
		return fmt.Errorf("recipes: load: %w", err)
	}

	book, err := codec.Decode(s.format, data)
	if err != nil {
		s.logger.Warn("store: backing file unreadable, starting empty",
			slog.String("path", path),
			slog.String("error", err.Error()))
		dst := filepath.Base(path) + corruptSuffix
		if mvErr := s.backend.Move(dst); mvErr != nil {
			s.logger.Warn("store: quarantine failed", slog.String("path", path), slog.String("error", mvErr.Error()))
			s.checksum = checksum.Sum(data)
		} else {
			s.logger.Info("store: quarantined backing file", slog.String("moved_to", dst))
		}
		return nil
	}

	s.book = book
	s.checksum = checksum.Sum(data)
	s.logger.Debug("store: loaded", slog.String("path", path), slog.Int("recipes", book.Len()))
	return nil
}

// Save overwrites the backing file with the whole book. Errors are returned
// unchanged in kind; callers treat them as fatal.
func (s *Store) Save() error {
	data, err := codec.Encode(s.format, s.book)
	if err != nil {
		return fmt.Errorf("recipes: save: %w", err)
	}

	if current, readErr := s.backend.Read(); readErr == nil && !checksum.Matches(current, s.checksum) {
		s.logger.Warn("store: backing file changed outside this session, overwriting",
			slog.String("path", s.backend.Path()))
	}

	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("recipes: save: %w", err)
	}
	s.checksum = checksum.Sum(data)
	s.logger.Debug("store: saved", slog.Int("recipes", s.book.Len()), slog.String("checksum", s.checksum))
	return nil
}

// Len returns the number of recipes.
func (s *Store) Len() int {
	return s.book.Len()
}

// Names returns every recipe name in insertion order.
func (s *Store) Names() []string {
	names := make([]string, 0, s.book.Len())
	for pair := s.book.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Lookup resolves query to a stored name, ignoring case.
func (s *Store) Lookup(query string) (string, bool) {
	if _, ok := s.book.Get(query); ok {
		return query, true
	}
	for pair := s.book.Oldest(); pair != nil; pair = pair.Next() {
		if strings.EqualFold(pair.Key, query) {
			return pair.Key, true
		}
	}
	return "", false
}

// Get returns a copy of the named recipe.
func (s *Store) Get(name string) (*models.Recipe, error) {
	r, err := s.recipe(name)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// Add inserts r under name and saves. A name that matches an existing one
// (ignoring case) overwrites that recipe under its stored name, which is
// returned.
func (s *Store) Add(name string, r *models.Recipe) (string, error) {
	if name == "" {
		return "", fmt.Errorf("recipes: add: empty name")
	}
	rec := r.Clone()
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("recipes: add %q: %w", name, err)
	}

	key := name
	if existing, ok := s.Lookup(name); ok {
		key = existing
		s.logger.Info("store: overwriting recipe", slog.String("name", key))
	}
	s.book.Set(key, rec)
	if err := s.Save(); err != nil {
		return "", err
	}
	return key, nil
}

// Delete removes the named recipe and saves.
func (s *Store) Delete(name string) error {
	if _, ok := s.book.Delete(name); !ok {
		return fmt.Errorf("recipes: delete %q: %w", name, apperr.ErrNotFound)
	}
	return s.Save()
}

// Rename moves the recipe at oldName to newName. newName is rejected when it
// equals any stored name exactly, or another recipe's name ignoring case.
// The recipe moves to the end of the iteration order. Not saved.
func (s *Store) Rename(oldName, newName string) error {
	rec, err := s.recipe(oldName)
	if err != nil {
		return err
	}
	if newName == "" {
		return fmt.Errorf("recipes: rename: empty name")
	}
	if _, ok := s.book.Get(newName); ok {
		return fmt.Errorf("recipes: rename to %q: %w", newName, apperr.ErrAlreadyExists)
	}
	if existing, ok := s.Lookup(newName); ok && existing != oldName {
		return fmt.Errorf("recipes: rename to %q collides with %q: %w", newName, existing, apperr.ErrAlreadyExists)
	}
	s.book.Set(newName, rec)
	s.book.Delete(oldName)
	return nil
}

// Snapshot returns a deep copy of the whole book.
func (s *Store) Snapshot() *models.Book {
	return cloneBook(s.book)
}

// Restore replaces the in-memory book with a copy of snap. Not saved.
func (s *Store) Restore(snap *models.Book) {
	s.book = cloneBook(snap)
}

func (s *Store) recipe(name string) (*models.Recipe, error) {
	r, ok := s.book.Get(name)
	if !ok {
		return nil, fmt.Errorf("recipes: %q: %w", name, apperr.ErrNotFound)
	}
	return r, nil
}

func cloneBook(b *models.Book) *models.Book {
	out := models.NewBook()
	for pair := b.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value.Clone())
	}
	return out
}
