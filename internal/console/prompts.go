package console

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/starford/recipebook/internal/apperr"
	"github.com/starford/recipebook/internal/models"
	"github.com/starford/recipebook/internal/recipes"
)

// Resolver maps user input onto a stored recipe name.
type Resolver interface {
	Lookup(query string) (string, bool)
}

const (
	msgRecipeNotFound = "Recipe not found, please try again."
	msgInvalidRating  = "Invalid rating entered, please use a number from 1 to 5."
	msgInvalidChoice  = "Invalid choice, please try again."
)

// affirmatives are the answers accepted as a yes.
var affirmatives = []string{"y", "Y", "yes", "Yes", "YES"}

// FindValidName prompts until the input names a stored recipe (ignoring
// case) and returns the stored name. Answering recipes.Cancel returns
// apperr.ErrCancelled; a recipe actually named like the sentinel wins.
func FindValidName(con IO, r Resolver) (string, error) {
	for {
		input, err := con.ReadLine(fmt.Sprintf("Enter a recipe name (%q to go back):\n", recipes.Cancel))
		if err != nil {
			return "", err
		}
		if name, ok := r.Lookup(input); ok {
			return name, nil
		}
		if isCancel(input) {
			return "", apperr.ErrCancelled
		}
		con.Print("\n" + msgRecipeNotFound + "\n")
	}
}

// PromptRating prompts until a rating in [1,5] is entered.
func PromptRating(con IO) (int, error) {
	for {
		input, err := con.ReadLine(fmt.Sprintf("Enter a rating (%d-%d):\n", models.MinRating, models.MaxRating))
		if err != nil {
			return 0, err
		}
		rating, err := models.ParseRating(input)
		if err == nil {
			return rating, nil
		}
		con.Print(msgInvalidRating)
	}
}

// PromptPosition prompts until a whole number is entered. Answering
// recipes.Cancel returns apperr.ErrCancelled.
func PromptPosition(con IO, prompt string) (int, error) {
	for {
		input, err := con.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if isCancel(input) {
			return 0, apperr.ErrCancelled
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil {
			return n, nil
		}
		con.Print("Invalid position, please enter a number.")
	}
}

// Confirm asks a yes/no question; only the fixed affirmative answers count
// as yes.
func Confirm(con IO, question string) (bool, error) {
	answer, err := con.ReadLine(question)
	if err != nil {
		return false, err
	}
	return slices.Contains(affirmatives, answer), nil
}

func isCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), recipes.Cancel)
}
