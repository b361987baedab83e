package recipes_test

import (
	"reflect"
	"testing"

	"github.com/starford/recipebook/internal/testutil"
)

func TestSearch(t *testing.T) {
	s, _ := testutil.TestStore(t)
	testutil.Seed(t, s, []string{"Tea", "Coffee"},
		testutil.Recipe(3, []string{"drink"}, "green tea", "1 bag"),
		testutil.Recipe(4, []string{"drink", "hot"}, "bean", "10g"),
	)

	cases := []struct {
		query string
		want  []string
	}{
		{"drink", []string{"Tea", "Coffee"}},
		{"bean", []string{"Coffee"}},
		{"TEA", []string{"Tea"}},
		{"hot", []string{"Coffee"}},
		{"n t", []string{"Tea"}},
		{"pizza", nil},
		{"", []string{"Tea", "Coffee"}},
	}
	for _, tc := range cases {
		if got := s.Search(tc.query); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Search(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestNames_InsertionOrder(t *testing.T) {
	s, _ := testutil.TestStore(t)
	testutil.Seed(t, s, []string{"b", "a", "c"},
		testutil.Recipe(1, nil), testutil.Recipe(2, nil), testutil.Recipe(3, nil))
	if got := s.Names(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Names = %v", got)
	}
}
