package table

import (
	"fmt"
	"slices"
	"strings"

	"hrportal/internal/domain"
)

// FacetSpec names a multi-select filter. Capitalize normalizes values before
// matching (status sets); Reference binds the facet to a reference list
// ("department", "country", "employment_type") for its dropdown options.
type FacetSpec struct {
	Field      string `yaml:"field" json:"field"`
	Capitalize bool   `yaml:"capitalize" json:"capitalize,omitempty"`
	Reference  string `yaml:"reference" json:"reference,omitempty"`
}

// Spec is the serializable per-screen configuration. Names refer to a Catalog.
type Spec struct {
	Search      []string        `yaml:"search" json:"search"`
	Facets      []FacetSpec     `yaml:"facets" json:"facets"`
	Toggles     []string        `yaml:"toggles" json:"toggles"`
	Sortable    []string        `yaml:"sortable" json:"sortable"`
	DefaultSort domain.SortSpec `yaml:"default_sort" json:"default_sort"`
	PageSize    int             `yaml:"page_size" json:"page_size"`
}

type facetField[T any] struct {
	field Field[T]
	spec  FacetSpec
}

// Config is a Spec resolved against a Catalog.
type Config[T Record] struct {
	Name        string
	Search      []Field[T]
	Facets      []facetField[T]
	Toggles     []Toggle[T]
	Sortable    []Field[T]
	DefaultSort domain.SortSpec
	PageSize    int
	Locale      string
}

// NewConfig resolves spec against cat. Unknown names are configuration errors.
func NewConfig[T Record](name string, cat Catalog[T], spec Spec, locale string) (Config[T], error) {
	cfg := Config[T]{Name: name, PageSize: spec.PageSize, Locale: locale}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	for _, n := range spec.Search {
		f, ok := cat.field(n)
		if !ok {
			return cfg, fmt.Errorf("screen %s: unknown search field %q", name, n)
		}
		cfg.Search = append(cfg.Search, f)
	}
	for _, fs := range spec.Facets {
		f, ok := cat.field(fs.Field)
		if !ok {
			return cfg, fmt.Errorf("screen %s: unknown facet field %q", name, fs.Field)
		}
		cfg.Facets = append(cfg.Facets, facetField[T]{field: f, spec: fs})
	}
	for _, n := range spec.Toggles {
		t, ok := cat.toggle(n)
		if !ok {
			return cfg, fmt.Errorf("screen %s: unknown toggle %q", name, n)
		}
		cfg.Toggles = append(cfg.Toggles, t)
	}
	for _, n := range spec.Sortable {
		f, ok := cat.field(n)
		if !ok {
			return cfg, fmt.Errorf("screen %s: unknown sortable field %q", name, n)
		}
		cfg.Sortable = append(cfg.Sortable, f)
	}
	if !spec.DefaultSort.IsZero() {
		if _, ok := cfg.sortField(spec.DefaultSort.Field); !ok {
			return cfg, fmt.Errorf("screen %s: default sort field %q is not sortable", name, spec.DefaultSort.Field)
		}
		cfg.DefaultSort = domain.SortSpec{Field: spec.DefaultSort.Field, Direction: domain.ParseDirection(string(spec.DefaultSort.Direction))}
	}
	return cfg, nil
}

func (c Config[T]) sortField(name string) (Field[T], bool) {
	for _, f := range c.Sortable {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Criteria is the user-editable filter state of a view. Zero values are no-ops.
type Criteria struct {
	Search  string              `json:"search"`
	Facets  map[string][]string `json:"facets,omitempty"`
	Toggles map[string]bool     `json:"toggles,omitempty"`
}

func (c Criteria) IsZero() bool {
	if c.Search != "" {
		return false
	}
	for _, v := range c.Facets {
		if len(v) > 0 {
			return false
		}
	}
	for _, on := range c.Toggles {
		if on {
			return false
		}
	}
	return true
}

// ViewState is everything that shapes what one view renders, apart from the
// records themselves.
type ViewState struct {
	Criteria Criteria        `json:"criteria"`
	Sort     domain.SortSpec `json:"sort"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Result is one rendered page plus the counts the toolbar needs.
type Result[T any] struct {
	Rows       []T             `json:"rows"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	PageCount  int             `json:"page_count"`
	Matched    int             `json:"matched"`
	StoreTotal int             `json:"store_total"`
	Sort       domain.SortSpec `json:"sort"`
}

// Engine runs Store -> filter -> sort -> page for one screen.
type Engine[T Record] struct {
	cfg Config[T]
}

func NewEngine[T Record](cfg Config[T]) *Engine[T] {
	return &Engine[T]{cfg: cfg}
}

func (e *Engine[T]) Name() string { return e.cfg.Name }

// InitialState is the state a fresh view starts from.
func (e *Engine[T]) InitialState() ViewState {
	return ViewState{Sort: e.cfg.DefaultSort, PageSize: e.cfg.PageSize}
}

// Compile turns Criteria into the predicate pipeline for this screen.
func (e *Engine[T]) Compile(c Criteria) ([]Criterion[T], error) {
	var out []Criterion[T]
	if c.Search != "" {
		out = append(out, Search[T]{Query: c.Search, Fields: e.cfg.Search})
	}
	for name, values := range c.Facets {
		ff, ok := e.facet(name)
		if !ok {
			return nil, domain.ValidationError{Field: "facets", Msg: fmt.Sprintf("unknown facet %q", name)}
		}
		values = cleanValues(values)
		if len(values) == 0 {
			continue
		}
		f := Facet[T]{Field: ff.field, Values: values}
		if ff.spec.Capitalize {
			f.Normalize = Capitalize
			for i, v := range f.Values {
				f.Values[i] = Capitalize(v)
			}
		}
		out = append(out, f)
	}
	for name, on := range c.Toggles {
		t, ok := e.toggle(name)
		if !ok {
			return nil, domain.ValidationError{Field: "toggles", Msg: fmt.Sprintf("unknown toggle %q", name)}
		}
		out = append(out, Switch[T]{Toggle: t, On: on})
	}
	return out, nil
}

// CheckSort validates a sort spec against the sortable fields.
func (e *Engine[T]) CheckSort(s domain.SortSpec) error {
	if s.IsZero() {
		return nil
	}
	if _, ok := e.cfg.sortField(s.Field); !ok {
		return domain.ValidationError{Field: "sort", Msg: fmt.Sprintf("field %q is not sortable", s.Field)}
	}
	return nil
}

func (e *Engine[T]) Apply(records []T, st ViewState) (Result[T], error) {
	criteria, err := e.Compile(st.Criteria)
	if err != nil {
		return Result[T]{}, err
	}
	if err := e.CheckSort(st.Sort); err != nil {
		return Result[T]{}, err
	}
	rows := Filter(records, criteria)
	if !st.Sort.IsZero() {
		f, _ := e.cfg.sortField(st.Sort.Field)
		rows = Sort(rows, f, st.Sort.Direction, e.cfg.Locale)
	}
	size := st.PageSize
	if size <= 0 {
		size = e.cfg.PageSize
	}
	page := Paginate(rows, st.Page, size)
	return Result[T]{
		Rows:       page.Items,
		Page:       page.Index,
		PageSize:   page.Size,
		PageCount:  page.Count,
		Matched:    page.Total,
		StoreTotal: len(records),
		Sort:       st.Sort,
	}, nil
}

// FacetOption lists the values a facet dropdown can offer.
type FacetOption struct {
	Field     string   `json:"field"`
	Reference string   `json:"reference,omitempty"`
	Values    []string `json:"values"`
}

// FacetOptions collects distinct values per facet across the unfiltered
// records, merged with extra values supplied per reference kind.
func (e *Engine[T]) FacetOptions(records []T, reference func(kind string) []string) []FacetOption {
	out := make([]FacetOption, 0, len(e.cfg.Facets))
	for _, ff := range e.cfg.Facets {
		seen := map[string]struct{}{}
		add := func(v string) {
			if ff.spec.Capitalize {
				v = Capitalize(v)
			}
			if v != "" {
				seen[v] = struct{}{}
			}
		}
		for _, r := range records {
			if v, ok := ff.field.value(r); ok {
				add(v)
			}
		}
		if ff.spec.Reference != "" && reference != nil {
			for _, v := range reference(ff.spec.Reference) {
				add(v)
			}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		c := NewComparator(e.cfg.Locale)
		slices.SortFunc(values, func(a, b string) int {
			if r := c.Strings(a, b, domain.Asc); r != 0 {
				return r
			}
			return strings.Compare(a, b)
		})
		out = append(out, FacetOption{Field: ff.field.Name, Reference: ff.spec.Reference, Values: values})
	}
	return out
}

func (e *Engine[T]) facet(name string) (facetField[T], bool) {
	for _, ff := range e.cfg.Facets {
		if ff.field.Name == name {
			return ff, true
		}
	}
	return facetField[T]{}, false
}

func (e *Engine[T]) toggle(name string) (Toggle[T], bool) {
	for _, t := range e.cfg.Toggles {
		if t.Name == name {
			return t, true
		}
	}
	return Toggle[T]{}, false
}

func cleanValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
