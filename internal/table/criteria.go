package table

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Criterion is one independent filter condition. An inactive criterion is a
// no-op and matches everything.
type Criterion[T any] interface {
	Active() bool
	Match(rec T) bool
}

// Search is a case-insensitive substring match over one or more fields. A
// record matches when any targeted field contains the query. Only the empty
// query is inactive; whitespace is matched like any other text.
type Search[T any] struct {
	Query  string
	Fields []Field[T]
}

func (s Search[T]) Active() bool { return s.Query != "" }

func (s Search[T]) Match(rec T) bool {
	q := strings.ToLower(s.Query)
	for _, f := range s.Fields {
		v, ok := f.value(rec)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// Facet is set membership: the field value must be one of Values.
type Facet[T any] struct {
	Field     Field[T]
	Values    []string
	Normalize func(string) string
}

func (f Facet[T]) Active() bool { return len(f.Values) > 0 }

func (f Facet[T]) Match(rec T) bool {
	v, ok := f.Field.value(rec)
	if !ok {
		return false
	}
	if f.Normalize != nil {
		v = f.Normalize(v)
	}
	return slices.Contains(f.Values, v)
}

// Switch wraps a Toggle with its on/off state.
type Switch[T any] struct {
	Toggle Toggle[T]
	On     bool
}

func (s Switch[T]) Active() bool { return s.On && s.Toggle.Test != nil }

func (s Switch[T]) Match(rec T) bool { return s.Toggle.Test(rec) }

// Matches reports whether rec satisfies every active criterion.
func Matches[T any](rec T, criteria []Criterion[T]) bool {
	for _, c := range criteria {
		if c.Active() && !c.Match(rec) {
			return false
		}
	}
	return true
}

// Filter keeps the records that match, preserving input order.
func Filter[T any](records []T, criteria []Criterion[T]) []T {
	active := make([]Criterion[T], 0, len(criteria))
	for _, c := range criteria {
		if c.Active() {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return slices.Clone(records)
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, active) {
			out = append(out, r)
		}
	}
	return out
}

// Capitalize normalizes status-like values: "in PROGRESS" -> "In Progress".
func Capitalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}
	// Casers keep state, so one per call.
	return cases.Title(language.Und).String(s)
}
