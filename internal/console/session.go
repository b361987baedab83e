package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/starford/recipebook/internal/apperr"
	"github.com/starford/recipebook/internal/models"
	"github.com/starford/recipebook/internal/recipes"
)

// Options tunes session behaviour.
type Options struct {
	// DiscardOnAbandon restores the book as it was when an edit session
	// began if the user leaves without saving. When false, changes made
	// during the abandoned session stay in memory and are written by the
	// next save.
	DiscardOnAbandon bool
}

// Session drives a recipe store through the interactive menus.
type Session struct {
	store  *recipes.Store
	con    IO
	styles Styles
	logger *slog.Logger
	opts   Options
}

// NewSession creates a session over store.
func NewSession(store *recipes.Store, con IO, styles Styles, logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, con: con, styles: styles, logger: logger, opts: opts}
}

// Run shows the main menu until the user exits or input ends. Save
// failures and broken store invariants are returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.con.Clear()
		s.con.Print("\n" + s.styles.Title.Render("Recipe Manager") + "\n")
		choice, err := s.menu(
			"Add a recipe",
			"Edit a recipe",
			"Delete a recipe",
			"View all recipes",
			"Search recipes",
			"Display a recipe",
			"Exit",
		)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.addRecipe()
		case "2":
			err = s.editRecipe()
		case "3":
			err = s.deleteRecipe()
		case "4":
			err = s.viewRecipes()
		case "5":
			err = s.searchRecipes()
		case "6":
			err = s.displayRecipe()
		case "7":
			return nil
		default:
			s.fail("\nInvalid choice. Try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput turns exhausted input into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// menu prints numbered options and reads the choice.
func (s *Session) menu(options ...string) (string, error) {
	s.con.Print("Please choose an option:")
	for i, opt := range options {
		s.con.Print(fmt.Sprintf("%d. %s", i+1, opt))
	}
	return s.con.ReadLine(fmt.Sprintf("\nEnter your choice (1-%d):\n", len(options)))
}

func (s *Session) fail(msg string) {
	s.con.Print(paint(s.styles.Error, msg))
}

func (s *Session) succeed(msg string) {
	s.con.Print(paint(s.styles.Success, msg))
}

// paint styles the text of msg but leaves surrounding blank lines alone;
// Lip Gloss pads every line of a multi-line string to the widest one.
func paint(st lipgloss.Style, msg string) string {
	body := strings.Trim(msg, "\n")
	if body == "" {
		return msg
	}
	i := strings.Index(msg, body)
	return msg[:i] + st.Render(body) + msg[i+len(body):]
}

func (s *Session) pause(msg string) error {
	_, err := s.con.ReadLine(msg)
	return err
}

// readNonEmpty prompts until the answer has visible characters.
func (s *Session) readNonEmpty(prompt, complaint string) (string, error) {
	for {
		v, err := s.con.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(v) != "" {
			return v, nil
		}
		s.fail(complaint)
	}
}

func (s *Session) addRecipe() error {
	s.con.Clear()
	s.con.Print(s.styles.Title.Render("Add Recipe"))
	r := models.New()

	for {
		ingredient, err := s.con.ReadLine("Enter an ingredient, leave blank when finished:\n")
		if err != nil {
			return err
		}
		if ingredient == "" {
			break
		}
		quantity, err := s.con.ReadLine("Enter a quantity:\n")
		if err != nil {
			return err
		}
		r.Ingredients.Set(ingredient, quantity)
	}

	for {
		step, err := s.con.ReadLine("Enter an instruction, leave blank when finished:\n")
		if err != nil {
			return err
		}
		if step == "" {
			break
		}
		r.Instructions = append(r.Instructions, step)
	}

	for {
		tag, err := s.con.ReadLine("Enter a tag, leave blank to finish:\n")
		if err != nil {
			return err
		}
		if tag == "" {
			break
		}
		r.Tags = append(r.Tags, tag)
	}

	author, err := s.con.ReadLine("Enter the author:\n")
	if err != nil {
		return err
	}
	r.Author = author

	if r.Rating, err = PromptRating(s.con); err != nil {
		return err
	}

	name, err := s.readNonEmpty("Enter a recipe name:\n", "Recipe name cannot be empty.")
	if err != nil {
		return err
	}
	key, err := s.store.Add(name, r)
	if err != nil {
		return err
	}
	s.logger.Info("recipe added", slog.String("name", key))
	s.succeed(fmt.Sprintf("%s saved", key))
	return nil
}

func (s *Session) deleteRecipe() error {
	s.con.Clear()
	s.con.Print(s.styles.Title.Render("Delete Recipe"))

	name, err := FindValidName(s.con, s.store)
	if err != nil {
		return ignoreCancel(err)
	}

	ok, err := Confirm(s.con, "Are you sure you want to delete this recipe? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		return s.pause("Recipe not deleted, press enter to return to main menu.")
	}
	if err := s.store.Delete(name); err != nil {
		return err
	}
	s.logger.Info("recipe deleted", slog.String("name", name))
	s.succeed(fmt.Sprintf("%s removed", name))
	return s.pause("\nPress enter to return to main menu.")
}

func (s *Session) viewRecipes() error {
	s.con.Clear()
	s.con.Print("\n" + s.styles.Title.Render("View All Recipes"))
	s.con.Print("\nRecipe Titles:")
	if names := s.store.Names(); len(names) > 0 {
		s.con.Print(renderNames(names))
	} else {
		s.con.Print(s.styles.Muted.Render("(no recipes yet)"))
	}
	return s.displayMenu()
}

func (s *Session) searchRecipes() error {
	s.con.Clear()
	query, err := s.con.ReadLine("\nSearch for a recipe name, category, or ingredient:\n")
	if err != nil {
		return err
	}

	found := s.store.Search(query)
	s.logger.Debug("search", slog.String("query", query), slog.Int("hits", len(found)))
	if len(found) == 0 {
		s.con.Print("No recipes found")
	} else {
		s.con.Print("\nRecipes matching search:")
		s.con.Print(renderNames(found))
	}
	return s.displayMenu()
}

// displayMenu follows the list views: show a recipe or go back.
func (s *Session) displayMenu() error {
	for {
		s.con.Print("")
		choice, err := s.menu("Display a recipe", "Return to main menu")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := s.displayRecipe(); err != nil {
				return err
			}
		case "2":
			return nil
		default:
			s.fail(msgInvalidChoice)
		}
	}
}

func (s *Session) displayRecipe() error {
	name, err := FindValidName(s.con, s.store)
	if err != nil {
		return ignoreCancel(err)
	}
	r, err := s.store.Get(name)
	if err != nil {
		return err
	}
	s.con.Clear()
	s.con.Print(RenderRecipe(name, r))
	return s.pause("\nPress enter to return to previous menu.")
}

func ignoreCancel(err error) error {
	if errors.Is(err, apperr.ErrCancelled) {
		return nil
	}
	return err
}
