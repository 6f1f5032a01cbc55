package table

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"hrportal/internal/domain"
)

// Comparator orders field values with locale-aware, case-insensitive
// collation. A Comparator is not safe for concurrent use: build one per sort.
type Comparator struct {
	coll *collate.Collator
}

// NewComparator resolves locale (BCP 47, e.g. "en", "de-CH"). An empty locale
// uses the root collation; a locale that cannot be parsed leaves the
// comparator on plain lexicographic ordering.
func NewComparator(locale string) *Comparator {
	tag := language.Und
	if l := strings.TrimSpace(locale); l != "" {
		parsed, err := language.Parse(l)
		if err != nil {
			return &Comparator{}
		}
		tag = parsed
	}
	return &Comparator{coll: collate.New(tag, collate.IgnoreCase)}
}

// Localized reports whether collation is in effect.
func (c *Comparator) Localized() bool { return c.coll != nil }

// Strings compares two already extracted values under dir and returns -1, 0
// or 1. Empty values always sort after non-empty ones, whatever the direction.
func (c *Comparator) Strings(a, b string, dir domain.Direction) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	var r int
	if c.coll != nil {
		r = c.coll.CompareString(a, b)
	} else {
		r = strings.Compare(a, b)
	}
	if dir == domain.Desc {
		r = -r
	}
	return r
}

// Compare orders two records by field. Absent nested values count as empty.
func Compare[T any](c *Comparator, a, b T, field Field[T], dir domain.Direction) int {
	av, _ := field.value(a)
	bv, _ := field.value(b)
	return c.Strings(av, bv, dir)
}

// Sort returns a stably sorted copy of records. Ties keep their prior order.
func Sort[T any](records []T, field Field[T], dir domain.Direction, locale string) []T {
	out := slices.Clone(records)
	c := NewComparator(locale)
	// Extract once; accessors may walk nested objects.
	keys := make([]string, len(out))
	idx := make([]int, len(out))
	for i := range out {
		idx[i] = i
		keys[i], _ = field.value(out[i])
	}
	slices.SortStableFunc(idx, func(x, y int) int {
		return c.Strings(keys[x], keys[y], dir)
	})
	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}
