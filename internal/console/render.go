package console

import (
	"fmt"
	"strings"

	"github.com/starford/recipebook/internal/models"
)

// RenderRecipe lays out every field of a recipe for display.
func RenderRecipe(name string, r *models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s by %s\n", name, r.Author)
	fmt.Fprintf(&b, "\nRating: %d / %d\n", r.Rating, models.MaxRating)
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
	b.WriteString("\nIngredients\n")
	b.WriteString(renderIngredients(r))
	b.WriteString("\nInstructions\n")
	for _, step := range r.Instructions {
		fmt.Fprintf(&b, "- %s\n", step)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderIngredients prints the quantity padded to ten columns, then the name.
func renderIngredients(r *models.Recipe) string {
	var b strings.Builder
	for pair := r.Ingredients.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&b, "%-10s%s\n", pair.Value, pair.Key)
	}
	return b.String()
}

func renderInstructions(r *models.Recipe) string {
	var b strings.Builder
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

func renderNames(names []string) string {
	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "- %s\n", n)
	}
	return strings.TrimRight(b.String(), "\n")
}
