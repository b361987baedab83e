// Package models defines the domain types for the recipe book.
package models

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/starford/recipebook/internal/apperr"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Ingredients maps ingredient name to a free-form quantity, kept in insertion order.
type Ingredients = orderedmap.OrderedMap[string, string]

// NewIngredients returns an empty ingredient list.
func NewIngredients() *Ingredients {
	return orderedmap.New[string, string]()
}

// Recipe is one dish in the book. Field order is the serialized order.
type Recipe struct {
	Ingredients  *Ingredients `yaml:"ingredients" json:"ingredients"`
	Instructions []string     `yaml:"instructions" json:"instructions"`
	Tags         []string     `yaml:"tags" json:"tags"`
	Author       string       `yaml:"author" json:"author"`
	Rating       int          `yaml:"rating" json:"rating"`
}

// New returns a recipe with every collection allocated.
func New() *Recipe {
	return &Recipe{
		Ingredients:  NewIngredients(),
		Instructions: []string{},
		Tags:         []string{},
	}
}

// Validate checks the rating bound.
func (r *Recipe) Validate() error {
	if err := ValidateRating(r.Rating); err != nil {
		return err
	}
	return nil
}

// Normalize replaces nil collections with empty ones so that every field is
// written out.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = NewIngredients()
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
}

// Clone returns a deep copy of r.
func (r *Recipe) Clone() *Recipe {
	c := &Recipe{
		Ingredients:  NewIngredients(),
		Instructions: append([]string{}, r.Instructions...),
		Tags:         append([]string{}, r.Tags...),
		Author:       r.Author,
		Rating:       r.Rating,
	}
	if r.Ingredients != nil {
		for pair := r.Ingredients.Oldest(); pair != nil; pair = pair.Next() {
			c.Ingredients.Set(pair.Key, pair.Value)
		}
	}
	return c
}

// IngredientNames returns the ingredient names in display order.
func (r *Recipe) IngredientNames() []string {
	if r.Ingredients == nil {
		return nil
	}
	names := make([]string, 0, r.Ingredients.Len())
	for pair := r.Ingredients.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// ValidateRating reports whether rating lies within [MinRating, MaxRating].
func ValidateRating(rating int) error {
	// Required rejects zero, which Min alone treats as empty and skips.
	err := validation.Validate(rating,
		validation.Required,
		validation.Min(MinRating),
		validation.Max(MaxRating),
	)
	if err != nil {
		return fmt.Errorf("%w: got %d", apperr.ErrInvalidRating, rating)
	}
	return nil
}

// ParseRating parses console input into a rating.
func ParseRating(input string) (int, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperr.ErrInvalidRating, input)
	}
	if err := ValidateRating(rating); err != nil {
		return 0, err
	}
	return rating, nil
}

// Book is the ordered name → recipe mapping that makes up a recipe store.
type Book = orderedmap.OrderedMap[string, *Recipe]

// NewBook returns an empty book.
func NewBook() *Book {
	return orderedmap.New[string, *Recipe]()
}
