package table

// Field projects a record onto the string used for matching and sorting.
// ok is false when the value lives in an optional sub-object that is absent.
type Field[T any] struct {
	Name string
	Get  func(T) (value string, ok bool)
}

func (f Field[T]) value(rec T) (string, bool) {
	if f.Get == nil {
		return "", false
	}
	return f.Get(rec)
}

// Toggle is a named boolean filter, applied only while switched on.
type Toggle[T any] struct {
	Name string
	Test func(T) bool
}

// Catalog lists every field and toggle a record type exposes; screen specs
// pick from it by name.
type Catalog[T any] struct {
	Fields  []Field[T]
	Toggles []Toggle[T]
}

func (c Catalog[T]) field(name string) (Field[T], bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (c Catalog[T]) toggle(name string) (Toggle[T], bool) {
	for _, t := range c.Toggles {
		if t.Name == name {
			return t, true
		}
	}
	return Toggle[T]{}, false
}

// Str adapts a plain string getter.
func Str[T any](name string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Get: func(rec T) (string, bool) { return get(rec), true }}
}
