// Package list is the context of several ordered values: a persistent,
// non-empty, singly linked sequence. A nil tail marks the last node.
//
// Bind maps a step over every element and keeps the shape of the list.
// FlatBind is the canonical list bind: every element yields a sub-list and
// the sub-lists are concatenated in order. Both walk the list iteratively.
package list

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/ib-77/monads/pkg/monad"
)

var ErrEmpty = errors.New("list: empty sequence")

type List[A any] struct {
	head A
	tail *List[A]
}

func Unit[A any](x A) List[A] {
	return List[A]{head: x}
}

func Cons[A any](head A, tail List[A]) List[A] {
	return List[A]{head: head, tail: &tail}
}

func Of[A any](head A, rest ...A) List[A] {
	xs := make([]A, 0, len(rest)+1)
	xs = append(xs, head)
	return build(append(xs, rest...))
}

// FromSlice links xs in order. It returns ErrEmpty for an empty xs; the list
// returned alongside a non-nil error must be ignored.
func FromSlice[A any](xs []A) (List[A], error) {
	if len(xs) == 0 {
		return List[A]{}, ErrEmpty
	}
	return build(xs), nil
}

// build links xs back to front; xs must not be empty.
func build[A any](xs []A) List[A] {
	out := List[A]{head: xs[len(xs)-1]}
	for i := len(xs) - 2; i >= 0; i-- {
		tail := out
		out = List[A]{head: xs[i], tail: &tail}
	}
	return out
}

// Bind applies f to every element, head first, and returns a list of the
// same length and order.
func Bind[A, B any](m List[A], f func(A) B) List[B] {
	monad.MustStep(f)
	out := make([]B, 0, m.Len())
	for x := range m.All() {
		out = append(out, f(x))
	}
	return build(out)
}

// FlatBind applies f to every element and concatenates the resulting lists.
func FlatBind[A, B any](m List[A], f func(A) List[B]) List[B] {
	monad.MustStep(f)
	var out []B
	for x := range m.All() {
		out = f(x).appendTo(out)
	}
	return build(out)
}

func Concat[A any](first List[A], rest ...List[A]) List[A] {
	out := first.Slice()
	for _, l := range rest {
		out = l.appendTo(out)
	}
	return build(out)
}

func Flatten[A any](m List[List[A]]) List[A] {
	return FlatBind(m, func(l List[A]) List[A] { return l })
}

func (m List[A]) Head() A {
	return m.head
}

// Tail returns the rest of the list; false on the last node.
func (m List[A]) Tail() (List[A], bool) {
	if m.tail == nil {
		return List[A]{}, false
	}
	return *m.tail, true
}

func (m List[A]) IsLast() bool {
	return m.tail == nil
}

func (m List[A]) Len() int {
	n := 1
	for t := m.tail; t != nil; t = t.tail {
		n++
	}
	return n
}

func (m List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for n := &m; n != nil; n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

func (m List[A]) Slice() []A {
	return m.appendTo(make([]A, 0, m.Len()))
}

func (m List[A]) appendTo(xs []A) []A {
	for x := range m.All() {
		xs = append(xs, x)
	}
	return xs
}

func (List[A]) Unit(x A) monad.Monad[A, func(A) A] {
	return Unit(x)
}

func (List[A]) Bind(m monad.Monad[A, func(A) A], f func(A) A) monad.Monad[A, func(A) A] {
	return Bind(monad.As[List[A]](m, "list.List"), f)
}

func (m List[A]) String() string {
	var sb strings.Builder
	n := m.Len()
	for x := range m.All() {
		fmt.Fprintf(&sb, "List(%v, ", x)
	}
	sb.WriteString("nil")
	sb.WriteString(strings.Repeat(")", n))
	return sb.String()
}
