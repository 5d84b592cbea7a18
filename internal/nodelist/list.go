// Package nodelist adapts github.com/benbjohnson/immutable lists to the
// operations the builder needs.
//
// Appending to or replacing the last element of a List returns a new List
// that shares its structure with its ancestor, so branching a chain of
// builder calls never disturbs other branches.
package nodelist

import "github.com/benbjohnson/immutable"

// List is a persistent sequence. The zero value and nil are both empty.
type List[T any] struct {
	items *immutable.List[T]
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil || l.items == nil {
		return 0
	}
	return l.items.Len()
}

// Append returns a list with values added after the current elements.
func (l *List[T]) Append(values ...T) *List[T] {
	items := l.list()
	for _, v := range values {
		items = items.Append(v)
	}
	return &List[T]{items: items}
}

// Last returns the final element and whether the list is non-empty.
func (l *List[T]) Last() (T, bool) {
	n := l.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return l.items.Get(n - 1), true
}

// ReplaceLast returns a list whose final element is v. It panics on an
// empty list; callers check Len first.
func (l *List[T]) ReplaceLast(v T) *List[T] {
	n := l.Len()
	if n == 0 {
		panic("nodelist: ReplaceLast on empty list")
	}
	return &List[T]{items: l.items.Set(n-1, v)}
}

// Slice returns the elements in order in a newly allocated slice.
func (l *List[T]) Slice() []T {
	n := l.Len()
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for itr := l.items.Iterator(); !itr.Done(); {
		_, v := itr.Next()
		out = append(out, v)
	}
	return out
}

func (l *List[T]) list() *immutable.List[T] {
	if l == nil || l.items == nil {
		return immutable.NewList[T]()
	}
	return l.items
}
