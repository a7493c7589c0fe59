// Package maybe is the context of a possibly absent value. Presence is an
// explicit tag: Just(0) is present, Nothing is absent.
package maybe

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

type Maybe[A any] struct {
	x       A
	present bool
}

func Just[A any](x A) Maybe[A] {
	return Maybe[A]{x: x, present: true}
}

func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

func Unit[A any](x A) Maybe[A] {
	return Just(x)
}

// FromZero treats the zero value of A as absent.
func FromZero[A comparable](x A) Maybe[A] {
	var zero A
	if x == zero {
		return Nothing[A]()
	}
	return Just(x)
}

// FromPtr is present when p is non-nil.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Just(*p)
}

// Bind applies f to a present value. An absent value propagates without
// calling f.
func Bind[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	monad.MustStep(f)
	if !m.present {
		return Nothing[B]()
	}
	return Unit(f(m.x))
}

func FlatBind[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	monad.MustStep(f)
	if !m.present {
		return Nothing[B]()
	}
	return f(m.x)
}

func (m Maybe[A]) Get() (A, bool) {
	return m.x, m.present
}

func (m Maybe[A]) IsPresent() bool {
	return m.present
}

func (m Maybe[A]) OrElse(def A) A {
	if m.present {
		return m.x
	}
	return def
}

func (Maybe[A]) Unit(x A) monad.Monad[A, func(A) A] {
	return Unit(x)
}

func (Maybe[A]) Bind(m monad.Monad[A, func(A) A], f func(A) A) monad.Monad[A, func(A) A] {
	return Bind(monad.As[Maybe[A]](m, "maybe.Maybe"), f)
}

func (m Maybe[A]) String() string {
	if !m.present {
		return "Maybe(None)"
	}
	return fmt.Sprintf("Maybe(%v)", m.x)
}
