package recipes

import (
	"fmt"

	"github.com/starford/recipebook/internal/apperr"
	"github.com/starford/recipebook/internal/models"
)

// The operations below mutate a recipe in memory only. The edit session
// decides when to Save.

// AddTag appends tag to the named recipe. Duplicates are allowed.
func (s *Store) AddTag(name, tag string) error {
	r, err := s.recipe(name)
	if err != nil {
		return err
	}
	r.Tags = append(r.Tags, tag)
	return nil
}

// RemoveTag removes the first tag equal to tag.
func (s *Store) RemoveTag(name, tag string) error {
	r, err := s.recipe(name)
	if err != nil {
		return err
	}
	for i, t := range r.Tags {
		if t == tag {
			r.Tags = append(r.Tags[:i], r.Tags[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("recipes: tag %q on %q: %w", tag, name, apperr.ErrUnknownEntry)
}

// SetIngredient adds an ingredient, or replaces the quantity of an existing
// one in place.
func (s *Store) SetIngredient(name, ingredient, quantity string) error {
	r, err := s.recipe(name)
	if err != nil {
		return err
	}
	r.Ingredients.Set(ingredient, quantity)
	return nil
}

// RemoveIngredient deletes an ingredient by exact name.
func (s *Store) RemoveIngredient(name, ingredient string) error {
	r, err := s.recipe(name)
	if err != nil {
		return err
	}
	if _, ok := r.Ingredients.Delete(ingredient); !ok {
		return fmt.Errorf("recipes: ingredient %q on %q: %w", ingredient, name, apperr.ErrUnknownEntry)
	}
	return nil
}

// UpdateQuantity changes the quantity of an existing ingredient.
func (s *Store) UpdateQuantity(name, ingredient, quantity string) error {
	r, err := s.recipe(name)
	if err != nil {
		return err
	}
	if _, ok := r.Ingredients.Get(ingredient); !ok {
		return fmt.Errorf("recipes: ingredient %q on %q: %w", ingredient, name, apperr.ErrUnknownEntry)
	}
	r.Ingredients.Set(ingredient, quantity)
	return nil
}

// InsertInstruction inserts step at the 1-based position. Positions before
// the first step insert at the front; positions past the end append. The
// position actually used is returned.
func (s *Store) InsertInstruction(name, step string, position int) (int, error) {
	r, err := s.recipe(name)
	if err != nil {
		return 0, err
	}
	i := min(max(position-1, 0), len(r.Instructions))
	r.Instructions = append(r.Instructions, "")
	copy(r.Instructions[i+1:], r.Instructions[i:])
	r.Instructions[i] = step
	return i + 1, nil
}

// DeleteInstruction removes the step at the 1-based position, which must lie
// within [1, N]. Later steps shift up by one. The removed step is returned.
func (s *Store) DeleteInstruction(name string, position int) (string, error) {
	r, err := s.recipe(name)
	if err != nil {
		return "", err
	}
	if position < 1 || position > len(r.Instructions) {
		return "", fmt.Errorf("recipes: instruction %d of %d on %q: %w",
			position, len(r.Instructions), name, apperr.ErrOutOfRange)
	}
	i := position - 1
	removed := r.Instructions[i]
	r.Instructions = append(r.Instructions[:i], r.Instructions[i+1:]...)
	return removed, nil
}

// SetRating replaces the rating after validating it.
func (s *Store) SetRating(name string, rating int) error {
	r, err := s.recipe(name)
	if err != nil {
		return err
	}
	if err := models.ValidateRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	return nil
}
