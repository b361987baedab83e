package recipes

import "strings"

// Search returns the names of recipes whose name, joined ingredient names or
// joined tags contain query, ignoring case. Each recipe appears at most once,
// in store order.
func (s *Store) Search(query string) []string {
	q := strings.ToLower(query)
	var out []string
	for pair := s.book.Oldest(); pair != nil; pair = pair.Next() {
		r := pair.Value
		switch {
		case strings.Contains(strings.ToLower(pair.Key), q),
			strings.Contains(strings.ToLower(strings.Join(r.IngredientNames(), " ")), q),
			strings.Contains(strings.ToLower(strings.Join(r.Tags, " ")), q):
			out = append(out, pair.Key)
		}
	}
	return out
}
