// Package filter narrows an already loaded row set by a free-text search term and
// exact-match categorical constraints. Everything here is pure and keeps row order.
package filter

import "strings"

// Field extracts the searchable text of a row. A field may yield several values
// (e.g. every medication name of a prescription) or none when an embed is missing.
type Field[T any] struct {
	Name   string
	Values func(T) []string
	// Raw fields are matched as plain substrings without case folding (id numbers, phone numbers).
	Raw bool
}

// Category extracts the value of a finite-valued field for exact matching.
type Category[T any] struct {
	Name  string
	Value func(T) string
}

// Criteria is the user input a page is filtered by.
type Criteria struct {
	Search string
	// Equals maps a category name to the selected value. Empty values impose no constraint.
	Equals map[string]string
}

// Spec describes how rows of one entity are searched and filtered.
type Spec[T any] struct {
	Fields     []Field[T]
	Categories []Category[T]
}

// Text is a convenience for a single always-present folded field.
func Text[T any](name string, value func(T) string) Field[T] {
	return Field[T]{Name: name, Values: func(row T) []string { return []string{value(row)} }}
}

// Apply returns the rows matching c. An empty search term and empty category values
// match every row, and constraints combine with AND.
func (s Spec[T]) Apply(rows []T, c Criteria) []T {
	term := c.Search
	folded := strings.ToLower(term)

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		if term != "" && !s.matchesSearch(row, term, folded) {
			continue
		}
		if !s.matchesCategories(row, c.Equals) {
			continue
		}
		result = append(result, row)
	}
	return result
}

func (s Spec[T]) matchesSearch(row T, term, folded string) bool {
	for _, f := range s.Fields {
		for _, v := range f.Values(row) {
			if f.Raw {
				if strings.Contains(v, term) {
					return true
				}
				continue
			}
			if strings.Contains(strings.ToLower(v), folded) {
				return true
			}
		}
	}
	return false
}

func (s Spec[T]) matchesCategories(row T, equals map[string]string) bool {
	for _, cat := range s.Categories {
		want := equals[cat.Name]
		if want == "" {
			continue
		}
		if cat.Value(row) != want {
			return false
		}
	}
	return true
}

// Options returns the distinct non-empty values of category name present in rows,
// in first-seen order. Unknown categories and empty row sets yield an empty list.
func (s Spec[T]) Options(rows []T, name string) []string {
	options := []string{}
	for _, cat := range s.Categories {
		if cat.Name != name {
			continue
		}
		seen := make(map[string]bool)
		for _, row := range rows {
			v := cat.Value(row)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			options = append(options, v)
		}
	}
	return options
}

// AllOptions returns the option lists of every category keyed by category name.
func (s Spec[T]) AllOptions(rows []T) map[string][]string {
	all := make(map[string][]string, len(s.Categories))
	for _, cat := range s.Categories {
		all[cat.Name] = s.Options(rows, cat.Name)
	}
	return all
}

// CategoryNames lists the categories in declaration order.
func (s Spec[T]) CategoryNames() []string {
	names := make([]string, len(s.Categories))
	for i, cat := range s.Categories {
		names[i] = cat.Name
	}
	return names
}
