package console

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/recipebook/internal/apperr"
	"github.com/starford/recipebook/internal/models"
)

// editRecipe runs the edit menu for one recipe. Changes live in memory until
// "save and exit".
func (s *Session) editRecipe() error {
	name, err := FindValidName(s.con, s.store)
	if err != nil {
		return ignoreCancel(err)
	}

	var snap *models.Book
	if s.opts.DiscardOnAbandon {
		snap = s.store.Snapshot()
	}

	for {
		s.con.Clear()
		s.con.Print(s.styles.Title.Render("Editing Recipe: " + name))
		s.con.Print("")
		choice, err := s.menu(
			"Change Name",
			"Edit Tags",
			"Edit Ingredients",
			"Edit Instructions",
			"Edit Rating",
			"Save recipe and exit editing",
			"Exit without saving",
		)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err = s.editName(name)
		case "2":
			err = s.editTags(name)
		case "3":
			err = s.editIngredients(name)
		case "4":
			err = s.editInstructions(name)
		case "5":
			err = s.editRating(name)
		case "6":
			if err := s.store.Save(); err != nil {
				return err
			}
			s.logger.Info("recipe saved", slog.String("name", name))
			return nil
		case "7":
			if snap != nil {
				s.store.Restore(snap)
				s.logger.Info("edit abandoned, changes discarded", slog.String("name", name))
			} else {
				s.logger.Info("edit abandoned, changes kept in memory", slog.String("name", name))
			}
			return nil
		default:
			s.fail("\nInvalid choice")
		}
		if err != nil {
			return err
		}
	}
}

// editName prompts until the recipe can be renamed and returns the new name.
func (s *Session) editName(name string) (string, error) {
	s.con.Clear()
	for {
		newName, err := s.readNonEmpty("\nEnter new recipe name:\n", "Recipe name cannot be empty.")
		if err != nil {
			return name, err
		}
		err = s.store.Rename(name, newName)
		if errors.Is(err, apperr.ErrAlreadyExists) {
			s.fail("\nPlease use a name that hasn't been used already")
			continue
		}
		if err != nil {
			return name, err
		}

		s.logger.Info("recipe renamed", slog.String("from", name), slog.String("to", newName))
		s.succeed(fmt.Sprintf("\n%s successfully changed to %s", name, newName))
		return newName, s.pause("\nPress enter to return to Edit Recipe menu.")
	}
}

func (s *Session) editRating(name string) error {
	s.con.Clear()
	s.con.Print(fmt.Sprintf("Edit %s rating\n", name))
	rating, err := PromptRating(s.con)
	if err != nil {
		return err
	}
	return s.store.SetRating(name, rating)
}

func (s *Session) editTags(name string) error {
	for {
		s.con.Clear()
		s.con.Print(fmt.Sprintf("Editing %s tags\n", name))
		choice, err := s.menu("Add new tag", "Remove existing tag", "Go back")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.addTag(name)
		case "2":
			err = s.removeTag(name)
		case "3":
			return nil
		default:
			s.fail("\nInvalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) addTag(name string) error {
	r, err := s.store.Get(name)
	if err != nil {
		return err
	}
	s.con.Print("Existing tags: " + renderTags(r.Tags))
	tag, err := s.con.ReadLine("Enter new tag: ")
	if err != nil {
		return err
	}
	if err := s.store.AddTag(name, tag); err != nil {
		return err
	}
	r.Tags = append(r.Tags, tag)
	s.con.Print("Updated tags: " + renderTags(r.Tags))
	return s.pause("\nPress enter to return to Edit Tags menu.")
}

// removeTag asks for a tag until one matches exactly. Answering the cancel
// sentinel backs out unless a tag with that exact text exists.
func (s *Session) removeTag(name string) error {
	r, err := s.store.Get(name)
	if err != nil {
		return err
	}
	if len(r.Tags) == 0 {
		s.fail("There are no tags to remove.")
		return s.pause("\nPress enter to return to Edit Tags menu.")
	}
	s.con.Print("Existing tags: " + renderTags(r.Tags))

	for {
		tag, err := s.con.ReadLine("Enter tag to remove: ")
		if err != nil {
			return err
		}
		err = s.store.RemoveTag(name, tag)
		if err == nil {
			break
		}
		if !errors.Is(err, apperr.ErrUnknownEntry) {
			return err
		}
		if isCancel(tag) {
			return nil
		}
		s.fail("Invalid tag entered, please try again.")
	}

	if r, err = s.store.Get(name); err != nil {
		return err
	}
	s.con.Print("Updated tags: " + renderTags(r.Tags))
	return s.pause("\nPress enter to return to Edit Tags menu.")
}

func (s *Session) editIngredients(name string) error {
	for {
		s.con.Clear()
		s.con.Print(fmt.Sprintf("Editing %s ingredients\n", name))
		choice, err := s.menu(
			"Add new ingredient",
			"Remove existing ingredient",
			"Edit quantity of existing ingredient",
			"Go back",
		)
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.ingredientLoop(name, "Add new ingredient", s.addIngredient)
		case "2":
			err = s.ingredientLoop(name, "Remove an ingredient", s.removeIngredient)
		case "3":
			err = s.ingredientLoop(name, "Edit an ingredient quantity", s.editQuantity)
		case "4":
			return nil
		default:
			s.fail("\nInvalid choice")
		}
		if err != nil {
			return err
		}
	}
}

// ingredientLoop shows the current ingredients and repeats action until the
// user goes back. action reports whether it changed anything.
func (s *Session) ingredientLoop(name, label string, action func(name string) (bool, error)) error {
	title := "existing ingredients:"
	for {
		r, err := s.store.Get(name)
		if err != nil {
			return err
		}
		s.con.Clear()
		s.con.Print(fmt.Sprintf("%s %s", name, title))
		s.con.Print(renderIngredients(r))
		choice, err := s.menu(label, "Go back")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			changed, err := action(name)
			if err != nil {
				return err
			}
			if changed {
				title = "updated ingredients:"
			}
		case "2":
			return nil
		default:
			s.fail("\nInvalid choice")
		}
	}
}

func (s *Session) addIngredient(name string) (bool, error) {
	ingredient, err := s.readNonEmpty("Enter a new ingredient: ", "Ingredient name cannot be empty.")
	if err != nil {
		return false, err
	}
	quantity, err := s.con.ReadLine("Enter a quantity: ")
	if err != nil {
		return false, err
	}
	return true, s.store.SetIngredient(name, ingredient, quantity)
}

func (s *Session) removeIngredient(name string) (bool, error) {
	for {
		ingredient, err := s.con.ReadLine("Enter the ingredient to remove: ")
		if err != nil {
			return false, err
		}
		err = s.store.RemoveIngredient(name, ingredient)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, apperr.ErrUnknownEntry) {
			return false, err
		}
		if isCancel(ingredient) {
			return false, nil
		}
		s.fail("Invalid ingredient, please type the ingredient exactly as it appears")
	}
}

func (s *Session) editQuantity(name string) (bool, error) {
	r, err := s.store.Get(name)
	if err != nil {
		return false, err
	}
	for {
		ingredient, err := s.con.ReadLine("Enter the ingredient to edit: ")
		if err != nil {
			return false, err
		}
		if _, ok := r.Ingredients.Get(ingredient); !ok {
			if isCancel(ingredient) {
				return false, nil
			}
			s.fail("Invalid ingredient, please type the ingredient exactly as it appears")
			continue
		}
		quantity, err := s.con.ReadLine("Enter a new quantity: ")
		if err != nil {
			return false, err
		}
		return true, s.store.UpdateQuantity(name, ingredient, quantity)
	}
}

func (s *Session) editInstructions(name string) error {
	for {
		s.con.Clear()
		s.con.Print(fmt.Sprintf("Edit %s instructions\n", name))
		choice, err := s.menu("Add new instruction", "Remove existing instruction", "Go back")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.instructionLoop(name, "Add new instruction", s.addInstruction)
		case "2":
			err = s.instructionLoop(name, "Delete an instruction", s.deleteInstruction)
		case "3":
			return nil
		default:
			s.fail("\nInvalid choice")
		}
		if err != nil {
			return err
		}
	}
}

// instructionLoop is the numbered-steps counterpart of ingredientLoop.
func (s *Session) instructionLoop(name, label string, action func(name string) (bool, error)) error {
	title := "existing instructions:"
	for {
		r, err := s.store.Get(name)
		if err != nil {
			return err
		}
		s.con.Clear()
		s.con.Print(fmt.Sprintf("%s %s", name, title))
		s.con.Print(renderInstructions(r))
		choice, err := s.menu(label, "Go back")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			changed, err := action(name)
			if err != nil {
				return err
			}
			if changed {
				title = "updated instructions:"
			}
		case "2":
			return nil
		default:
			s.fail("\nInvalid choice")
		}
	}
}

func (s *Session) addInstruction(name string) (bool, error) {
	step, err := s.con.ReadLine("Enter new instruction: ")
	if err != nil {
		return false, err
	}
	pos, err := PromptPosition(s.con, "Enter position to insert new instruction: ")
	if err != nil {
		return false, ignoreCancel(err)
	}
	if _, err := s.store.InsertInstruction(name, step, pos); err != nil {
		return false, err
	}
	return true, nil
}

// deleteInstruction asks for a position within [1, N] until one is valid.
func (s *Session) deleteInstruction(name string) (bool, error) {
	r, err := s.store.Get(name)
	if err != nil {
		return false, err
	}
	n := len(r.Instructions)
	if n == 0 {
		s.fail("There are no instructions to remove.")
		return false, nil
	}
	for {
		pos, err := PromptPosition(s.con, fmt.Sprintf("Enter position of unwanted instruction (1-%d): ", n))
		if err != nil {
			return false, ignoreCancel(err)
		}
		_, err = s.store.DeleteInstruction(name, pos)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, apperr.ErrOutOfRange) {
			return false, err
		}
		s.fail("Invalid position, try again.")
	}
}
