package models

// Cardinality tags how many values a Variant holds.
type Cardinality int

const (
	None Cardinality = iota
	One
	Many
)

func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case Many:
		return "many"
	}
	return "none"
}

// Variant carries a value whose upstream shape is sometimes a scalar,
// sometimes a list and sometimes absent. Consumers normalize through First or
// All instead of branching on the raw shape.
type Variant[T any] struct {
	kind  Cardinality
	items []T
}

func NoneOf[T any]() Variant[T] {
	return Variant[T]{kind: None}
}

func OneOf[T any](v T) Variant[T] {
	return Variant[T]{kind: One, items: []T{v}}
}

// ManyOf collapses empty and single-element slices to None and One.
func ManyOf[T any](vs []T) Variant[T] {
	switch len(vs) {
	case 0:
		return NoneOf[T]()
	case 1:
		return OneOf(vs[0])
	}
	items := make([]T, len(vs))
	copy(items, vs)
	return Variant[T]{kind: Many, items: items}
}

// FromPointer maps nil to None.
func FromPointer[T any](p *T) Variant[T] {
	if p == nil {
		return NoneOf[T]()
	}
	return OneOf(*p)
}

func (v Variant[T]) Kind() Cardinality {
	return v.kind
}

func (v Variant[T]) IsNone() bool {
	return v.kind == None
}

// First returns the first held value.
func (v Variant[T]) First() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	return v.items[0], true
}

func (v Variant[T]) All() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}
