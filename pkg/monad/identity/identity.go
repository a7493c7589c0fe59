// Package identity is the context with no extra capability: Bind always
// applies its step.
package identity

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

type Identity[A any] struct {
	x A
}

func Unit[A any](x A) Identity[A] {
	return Identity[A]{x: x}
}

// Bind applies f to the wrapped value and rewraps the outcome.
func Bind[A, B any](m Identity[A], f func(A) B) Identity[B] {
	monad.MustStep(f)
	return Unit(f(m.x))
}

// FlatBind is the canonical bind: f produces the next Identity itself.
func FlatBind[A, B any](m Identity[A], f func(A) Identity[B]) Identity[B] {
	monad.MustStep(f)
	return f(m.x)
}

func (m Identity[A]) Value() A {
	return m.x
}

func (Identity[A]) Unit(x A) monad.Monad[A, func(A) A] {
	return Unit(x)
}

func (Identity[A]) Bind(m monad.Monad[A, func(A) A], f func(A) A) monad.Monad[A, func(A) A] {
	return Bind(monad.As[Identity[A]](m, "identity.Identity"), f)
}

func (m Identity[A]) String() string {
	return fmt.Sprintf("Identity(%v)", m.x)
}
