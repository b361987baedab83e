package console

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/starford/recipebook/internal/recipes"
	"github.com/starford/recipebook/internal/storage"
	"github.com/starford/recipebook/internal/testutil"
)

// sessionEnv seeds a store with Tea and Coffee and scripts the console input.
type sessionEnv struct {
	session *Session
	store   *recipes.Store
	file    storage.Provider
	out     *bytes.Buffer
}

func newSessionEnv(t *testing.T, opts Options, input ...string) *sessionEnv {
	t.Helper()
	store, file := testutil.TestStore(t)
	tea := testutil.Recipe(4, []string{"drink"}, "green tea", "1 bag")
	tea.Instructions = []string{"boil", "steep", "pour"}
	tea.Author = "Ana"
	coffee := testutil.Recipe(5, []string{"drink", "hot"}, "bean", "10g")
	testutil.Seed(t, store, []string{"Tea", "Coffee"}, tea, coffee)

	out := &bytes.Buffer{}
	con := NewTerminal(strings.NewReader(strings.Join(input, "\n")+"\n"), out, true)
	return &sessionEnv{
		session: NewSession(store, con, NewStyles(out, false), testutil.Logger(), opts),
		store:   store,
		file:    file,
		out:     out,
	}
}

func (e *sessionEnv) run(t *testing.T) {
	t.Helper()
	if err := e.session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v\noutput:\n%s", err, e.out)
	}
}

func (e *sessionEnv) persisted(t *testing.T) *recipes.Store {
	t.Helper()
	s, err := recipes.Open(e.file, testutil.Logger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	return s
}

func TestRun_ExitAndEOF(t *testing.T) {
	e := newSessionEnv(t, Options{}, "42", "7")
	e.run(t)
	if !strings.Contains(e.out.String(), "Invalid choice. Try again.") {
		t.Errorf("missing invalid choice message:\n%s", e.out)
	}
	if strings.Contains(e.out.String(), clearSequence) {
		t.Error("screen cleared on a non-terminal writer")
	}

	e = newSessionEnv(t, Options{})
	e.run(t)
}

func TestRun_Cancelled(t *testing.T) {
	e := newSessionEnv(t, Options{}, "7")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.session.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAddRecipe(t *testing.T) {
	e := newSessionEnv(t, Options{},
		"1",
		"flour", "200g", "egg", "2", "",
		"mix", "fry", "",
		"breakfast", "",
		"Ana",
		"9", "3",
		"", "Pancakes",
		"7",
	)
	e.run(t)

	out := e.out.String()
	if !strings.Contains(out, "Invalid rating entered, please use a number from 1 to 5.") {
		t.Errorf("rating not re-prompted:\n%s", out)
	}
	if !strings.Contains(out, "Recipe name cannot be empty.") {
		t.Errorf("empty name not re-prompted:\n%s", out)
	}

	s := e.persisted(t)
	if want := []string{"Tea", "Coffee", "Pancakes"}; !reflect.DeepEqual(s.Names(), want) {
		t.Fatalf("names = %v, want %v", s.Names(), want)
	}
	r, _ := s.Get("Pancakes")
	if !reflect.DeepEqual(r.IngredientNames(), []string{"flour", "egg"}) ||
		!reflect.DeepEqual(r.Instructions, []string{"mix", "fry"}) ||
		!reflect.DeepEqual(r.Tags, []string{"breakfast"}) ||
		r.Author != "Ana" || r.Rating != 3 {
		t.Errorf("record = %+v", r)
	}
}

func TestDeleteRecipe(t *testing.T) {
	e := newSessionEnv(t, Options{}, "3", "nope", "tea", "y", "", "7")
	e.run(t)
	if got := e.persisted(t).Names(); !reflect.DeepEqual(got, []string{"Coffee"}) {
		t.Errorf("names = %v", got)
	}
	if !strings.Contains(e.out.String(), "Tea removed") {
		t.Errorf("missing confirmation:\n%s", e.out)
	}
}

func TestDeleteRecipe_Declined(t *testing.T) {
	e := newSessionEnv(t, Options{}, "3", "Tea", "n", "", "7")
	e.run(t)
	if got := e.store.Names(); !reflect.DeepEqual(got, []string{"Tea", "Coffee"}) {
		t.Errorf("names = %v", got)
	}
	if !strings.Contains(e.out.String(), "Recipe not deleted") {
		t.Errorf("missing no-op message:\n%s", e.out)
	}
}

func TestDeleteRecipe_Back(t *testing.T) {
	e := newSessionEnv(t, Options{}, "3", "back", "7")
	e.run(t)
	if e.store.Len() != 2 {
		t.Errorf("len = %d", e.store.Len())
	}
}

func TestSearchRecipes(t *testing.T) {
	e := newSessionEnv(t, Options{}, "5", "drink", "2", "5", "bean", "2", "5", "pizza", "2", "7")
	e.run(t)
	out := e.out.String()
	if !strings.Contains(out, "- Tea\n- Coffee\n") {
		t.Errorf("drink results missing:\n%s", out)
	}
	if !strings.Contains(out, "Recipes matching search:\n- Coffee\n\n") {
		t.Errorf("bean results wrong:\n%s", out)
	}
	if !strings.Contains(out, "No recipes found") {
		t.Errorf("empty result message missing:\n%s", out)
	}
}

func TestViewAndDisplay(t *testing.T) {
	e := newSessionEnv(t, Options{}, "4", "1", "tea", "", "2", "7")
	e.run(t)
	out := e.out.String()
	for _, want := range []string{
		"Recipe Titles:\n- Tea\n- Coffee\n",
		"Tea by Ana\n",
		"Rating: 4 / 5\n",
		"Tags: drink\n",
		"1 bag     green tea\n",
		"- boil\n- steep\n- pour\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEdit_RenameCollision(t *testing.T) {
	e := newSessionEnv(t, Options{}, "2", "tea", "1", "Coffee", "Green Tea", "", "6", "7")
	e.run(t)
	if !strings.Contains(e.out.String(), "Please use a name that hasn't been used already") {
		t.Errorf("collision not reported:\n%s", e.out)
	}
	if got := e.persisted(t).Names(); !reflect.DeepEqual(got, []string{"Coffee", "Green Tea"}) {
		t.Errorf("names = %v", got)
	}
}

func TestEdit_AbandonKeepsInMemoryChanges(t *testing.T) {
	e := newSessionEnv(t, Options{}, "2", "Tea", "5", "0", "2", "7", "7")
	e.run(t)

	r, _ := e.store.Get("Tea")
	if r.Rating != 2 {
		t.Errorf("in-memory rating = %d, want 2", r.Rating)
	}
	p, _ := e.persisted(t).Get("Tea")
	if p.Rating != 4 {
		t.Errorf("persisted rating = %d, want 4", p.Rating)
	}
}

func TestEdit_AbandonDiscards(t *testing.T) {
	e := newSessionEnv(t, Options{DiscardOnAbandon: true}, "2", "Tea", "5", "2", "1", "Chai", "", "7", "7")
	e.run(t)
	if got := e.store.Names(); !reflect.DeepEqual(got, []string{"Tea", "Coffee"}) {
		t.Fatalf("names = %v", got)
	}
	r, _ := e.store.Get("Tea")
	if r.Rating != 4 {
		t.Errorf("rating = %d, want 4", r.Rating)
	}
}

func TestEdit_Tags(t *testing.T) {
	e := newSessionEnv(t, Options{}, "2", "Tea", "2", "2", "hot", "back", "1", "sweet", "", "3", "6", "7")
	e.run(t)
	if !strings.Contains(e.out.String(), "Invalid tag entered, please try again.") {
		t.Errorf("unknown tag not reported:\n%s", e.out)
	}
	r, _ := e.persisted(t).Get("Tea")
	if !reflect.DeepEqual(r.Tags, []string{"drink", "sweet"}) {
		t.Errorf("tags = %v", r.Tags)
	}
}

func TestEdit_Ingredients(t *testing.T) {
	e := newSessionEnv(t, Options{},
		"2", "Tea", "3",
		"3", "1", "sugar", "green tea", "2 bags", "2",
		"1", "1", "", "milk", "50ml", "2",
		"2", "1", "lemon", "back", "2",
		"4", "6", "7",
	)
	e.run(t)

	r, _ := e.persisted(t).Get("Tea")
	if !reflect.DeepEqual(r.IngredientNames(), []string{"green tea", "milk"}) {
		t.Fatalf("ingredients = %v", r.IngredientNames())
	}
	if q, _ := r.Ingredients.Get("green tea"); q != "2 bags" {
		t.Errorf("green tea = %q", q)
	}
	if q, _ := r.Ingredients.Get("milk"); q != "50ml" {
		t.Errorf("milk = %q", q)
	}
	if strings.Count(e.out.String(), "Invalid ingredient, please type the ingredient exactly as it appears") != 2 {
		t.Errorf("unknown ingredient not reported twice:\n%s", e.out)
	}
}

func TestEdit_InstructionDeleteBounds(t *testing.T) {
	e := newSessionEnv(t, Options{}, "2", "Tea", "4", "2", "1", "4", "1", "2", "3", "6", "7")
	e.run(t)
	if !strings.Contains(e.out.String(), "Invalid position, try again.") {
		t.Errorf("out of range position not reported:\n%s", e.out)
	}
	r, _ := e.persisted(t).Get("Tea")
	if !reflect.DeepEqual(r.Instructions, []string{"steep", "pour"}) {
		t.Errorf("instructions = %v", r.Instructions)
	}
}

func TestEdit_InstructionInsert(t *testing.T) {
	e := newSessionEnv(t, Options{}, "2", "Tea", "4", "1", "1", "warm pot", "two", "2", "2", "3", "6", "7")
	e.run(t)
	r, _ := e.persisted(t).Get("Tea")
	if want := []string{"boil", "warm pot", "steep", "pour"}; !reflect.DeepEqual(r.Instructions, want) {
		t.Errorf("instructions = %v, want %v", r.Instructions, want)
	}
}
