// Package filters computes derived views over fixture collections: search,
// attribute criteria and facets. Every function returns fresh slices and never
// mutates its input.
package filters

import (
	"slices"
	"strings"
)

// Field returns the searchable texts of an item. Empty strings never match.
type Field[T any] func(T) []string

// Criterion reports whether an item passes one filter.
type Criterion[T any] func(T) bool

// Query is a search term over Fields plus criteria that must all hold.
type Query[T any] struct {
	Search   string
	Fields   []Field[T]
	Criteria []Criterion[T]
}

// Text turns a single string accessor into a Field.
func Text[T any](get func(T) string) Field[T] {
	return func(item T) []string { return []string{get(item)} }
}

// List turns a string slice accessor into a Field.
func List[T any](get func(T) []string) Field[T] {
	return Field[T](get)
}

// Normalize trims and lowercases a search term.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// containsFold reports whether s contains the normalized term.
func containsFold(s, term string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), term)
}

// Matches reports whether item passes q.
func (q Query[T]) Matches(item T) bool {
	return q.matchesSearch(item, Normalize(q.Search)) && q.matchesCriteria(item)
}

func (q Query[T]) matchesSearch(item T, term string) bool {
	if term == "" {
		return true
	}
	for _, f := range q.Fields {
		for _, s := range f(item) {
			if containsFold(s, term) {
				return true
			}
		}
	}
	return false
}

func (q Query[T]) matchesCriteria(item T) bool {
	for _, c := range q.Criteria {
		if !c(item) {
			return false
		}
	}
	return true
}

// Apply returns the items matching q in source order.
func Apply[T any](items []T, q Query[T]) []T {
	term := Normalize(q.Search)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if q.matchesSearch(item, term) && q.matchesCriteria(item) {
			out = append(out, item)
		}
	}
	return out
}

// Equals keeps items whose attribute equals want. An empty want keeps everything.
func Equals[T any](get func(T) string, want string) Criterion[T] {
	if want == "" {
		return nil
	}
	return func(item T) bool { return get(item) == want }
}

// ContainsFold keeps items whose attribute contains sub, ignoring case.
func ContainsFold[T any](get func(T) string, sub string) Criterion[T] {
	term := Normalize(sub)
	if term == "" {
		return nil
	}
	return func(item T) bool { return containsFold(get(item), term) }
}

// OneOf keeps items whose attribute is in set. An empty set keeps everything.
func OneOf[T any](get func(T) string, set []string) Criterion[T] {
	if len(set) == 0 {
		return nil
	}
	set = slices.Clone(set)
	return func(item T) bool { return slices.Contains(set, get(item)) }
}

// AnyContains keeps items where some text contains some term, ignoring case.
func AnyContains[T any](get func(T) []string, terms []string) Criterion[T] {
	normalized := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := Normalize(t); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil
	}
	return func(item T) bool {
		for _, s := range get(item) {
			for _, term := range normalized {
				if containsFold(s, term) {
					return true
				}
			}
		}
		return false
	}
}

// criteria drops the nil criteria produced by empty constraints.
func criteria[T any](cs ...Criterion[T]) []Criterion[T] {
	out := make([]Criterion[T], 0, len(cs))
	for _, c := range cs {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
