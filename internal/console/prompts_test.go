package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/starford/recipebook/internal/apperr"
)

// scripted is an IO that replays fixed answers and records printed text.
type scripted struct {
	answers []string
	printed []string
	prompts int
}

func (s *scripted) ReadLine(string) (string, error) {
	s.prompts++
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scripted) Print(text string) { s.printed = append(s.printed, text) }
func (s *scripted) Clear() {}

type names map[string]bool

func (n names) Lookup(q string) (string, bool) {
	for k := range n {
		if strings.EqualFold(k, q) {
			return k, true
		}
	}
	return "", false
}

func TestFindValidName(t *testing.T) {
	con := &scripted{answers: []string{"lasagne", "pasta bake"}}
	got, err := FindValidName(con, names{"Pasta Bake": true})
	if err != nil {
		t.Fatalf("FindValidName: %v", err)
	}
	if got != "Pasta Bake" {
		t.Errorf("got %q, want %q", got, "Pasta Bake")
	}
	if con.prompts != 2 || len(con.printed) != 1 {
		t.Errorf("prompts = %d, printed = %v", con.prompts, con.printed)
	}
}

func TestFindValidName_Cancel(t *testing.T) {
	con := &scripted{answers: []string{"BACK"}}
	if _, err := FindValidName(con, names{"Tea": true}); !errors.Is(err, apperr.ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}

func TestFindValidName_RecipeNamedBack(t *testing.T) {
	con := &scripted{answers: []string{"back"}}
	got, err := FindValidName(con, names{"Back": true})
	if err != nil || got != "Back" {
		t.Errorf("got %q, %v; want stored recipe", got, err)
	}
}

func TestFindValidName_EOF(t *testing.T) {
	con := &scripted{answers: []string{"nope"}}
	if _, err := FindValidName(con, names{}); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestPromptRating(t *testing.T) {
	con := &scripted{answers: []string{"0", "abc", "6", "2.5", "5"}}
	got, err := PromptRating(con)
	if err != nil {
		t.Fatalf("PromptRating: %v", err)
	}
	if got != 5 {
		t.Errorf("rating = %d, want 5", got)
	}
	if len(con.printed) != 4 {
		t.Errorf("expected 4 error messages, got %v", con.printed)
	}
	for _, p := range con.printed {
		if p != msgInvalidRating {
			t.Errorf("message = %q", p)
		}
	}
}

func TestConfirm(t *testing.T) {
	for answer, want := range map[string]bool{
		"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
		"n": false, "yEs": false, "": false, "sure": false,
	} {
		got, err := Confirm(&scripted{answers: []string{answer}}, "?")
		if err != nil || got != want {
			t.Errorf("Confirm(%q) = %v, %v; want %v", answer, got, err, want)
		}
	}
}

func TestPaint_KeepsBlankLines(t *testing.T) {
	st := NewStyles(io.Discard, false)
	if got := paint(st.Error, "\nInvalid choice\n"); got != "\nInvalid choice\n" {
		t.Errorf("paint = %q", got)
	}
}
