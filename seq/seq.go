// Package seq provides a lazily produced, restartable sequence type.
//
// A Seq is built from suspended generator cells. Each cell runs its
// generator at most once and memoizes the result, so a Seq can be
// walked any number of times without re-running producers and without
// shared mutable walk state. A nil *Seq is the empty sequence.
package seq

import "iter"

// Seq is a lazy sequence of T. The zero value (nil) is empty.
type Seq[T any] struct {
	gen   func() (T, *Seq[T], bool)
	done  bool
	empty bool
	head  T
	tail  *Seq[T]
}

// New returns a sequence whose first cell is produced by gen.
// gen reports false when the sequence is empty. It is called at most
// once.
func New[T any](gen func() (T, *Seq[T], bool)) *Seq[T] {
	return &Seq[T]{gen: gen}
}

// Empty returns the empty sequence.
func Empty[T any]() *Seq[T] {
	return nil
}

// Cons returns a sequence with head followed by tail.
func Cons[T any](head T, tail *Seq[T]) *Seq[T] {
	return &Seq[T]{done: true, head: head, tail: tail}
}

// FromSlice returns a sequence over xs. The slice must not be mutated
// afterwards.
func FromSlice[T any](xs []T) *Seq[T] {
	return sliceFrom(xs, 0)
}

func sliceFrom[T any](xs []T, i int) *Seq[T] {
	if i >= len(xs) {
		return nil
	}
	return New(func() (T, *Seq[T], bool) {
		return xs[i], sliceFrom(xs, i+1), true
	})
}

func (s *Seq[T]) force() {
	if s.done {
		return
	}
	gen := s.gen
	s.done = true
	s.gen = nil
	h, t, ok := gen()
	if !ok {
		s.empty = true
		return
	}
	s.head = h
	s.tail = t
}

// IsEmpty reports whether the sequence has no elements. It forces at
// most the first cell.
func (s *Seq[T]) IsEmpty() bool {
	if s == nil {
		return true
	}
	s.force()
	return s.empty
}

// Head returns the first element, reporting false on an empty
// sequence.
func (s *Seq[T]) Head() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.head, true
}

// Tail returns the sequence after the first element. The tail of an
// empty sequence is empty.
func (s *Seq[T]) Tail() *Seq[T] {
	if s.IsEmpty() {
		return nil
	}
	return s.tail
}

// Filter returns a sequence of the elements for which keep is true.
// keep runs on demand, once per underlying element, so stateful
// predicates observe each element exactly once even across repeated
// walks of the result.
func (s *Seq[T]) Filter(keep func(T) bool) *Seq[T] {
	return New(func() (T, *Seq[T], bool) {
		for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
			h, _ := cur.Head()
			if keep(h) {
				return h, cur.Tail().Filter(keep), true
			}
		}
		var zero T
		return zero, nil, false
	})
}

// Enumerate walks head to tail, stopping early when visit returns
// false. It reports whether the walk ran to completion.
func (s *Seq[T]) Enumerate(visit func(T) bool) bool {
	for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
		h, _ := cur.Head()
		if !visit(h) {
			return false
		}
	}
	return true
}

// All returns a range-over-func iterator for the sequence.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Enumerate(yield)
	}
}

// Force realizes the full sequence into a slice.
func (s *Seq[T]) Force() []T {
	var res []T
	for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
		h, _ := cur.Head()
		res = append(res, h)
	}
	return res
}

// Len forces the full sequence and returns its length.
func (s *Seq[T]) Len() int {
	n := 0
	for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
		n++
	}
	return n
}

// Concat returns the lazy concatenation of ss.
func Concat[T any](ss ...*Seq[T]) *Seq[T] {
	return New(func() (T, *Seq[T], bool) {
		for i, s := range ss {
			if s.IsEmpty() {
				continue
			}
			h, _ := s.Head()
			rest := append([]*Seq[T]{s.Tail()}, ss[i+1:]...)
			return h, Concat(rest...), true
		}
		var zero T
		return zero, nil, false
	})
}
