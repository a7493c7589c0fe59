// Package either is the context of a disjoint success or failure. The left
// channel carries the failure, the right channel the success; an explicit
// tag decides which one is authoritative.
package either

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l, isLeft: true}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

// Unit populates the right channel.
func Unit[L, R any](x R) Either[L, R] {
	return Right[L](x)
}

// New builds an Either from both slots: a non-zero left wins, otherwise right
// is authoritative. The other slot is dropped.
func New[L comparable, R any](l L, r R) Either[L, R] {
	var zero L
	if l != zero {
		return Left[L, R](l)
	}
	return Right[L](r)
}

// FromResult adapts a (value, error) pair; a non-nil error is the left.
func FromResult[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](r)
}

// Bind applies f to the right value. A left surfaces unchanged and f is not
// called.
func Bind[L, R, B any](m Either[L, R], f func(R) B) Either[L, B] {
	monad.MustStep(f)
	if m.isLeft {
		return Left[L, B](m.left)
	}
	return Unit[L](f(m.right))
}

func FlatBind[L, R, B any](m Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	monad.MustStep(f)
	if m.isLeft {
		return Left[L, B](m.left)
	}
	return f(m.right)
}

// MapLeft transforms the failure and leaves a right untouched.
func MapLeft[L, L2, R any](m Either[L, R], f func(L) L2) Either[L2, R] {
	monad.MustStep(f)
	if m.isLeft {
		return Left[L2, R](f(m.left))
	}
	return Right[L2](m.right)
}

// Fold collapses m with the handler of its populated channel.
func Fold[L, R, T any](m Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if m.isLeft {
		monad.MustStep(onLeft)
		return onLeft(m.left)
	}
	monad.MustStep(onRight)
	return onRight(m.right)
}

func (m Either[L, R]) IsLeft() bool {
	return m.isLeft
}

func (m Either[L, R]) IsRight() bool {
	return !m.isLeft
}

func (m Either[L, R]) Left() L {
	return m.left
}

func (m Either[L, R]) Right() R {
	return m.right
}

// Get returns the right value and whether it is authoritative.
func (m Either[L, R]) Get() (R, bool) {
	return m.right, !m.isLeft
}

func (Either[L, R]) Unit(x R) monad.Monad[R, func(R) R] {
	return Unit[L](x)
}

func (Either[L, R]) Bind(m monad.Monad[R, func(R) R], f func(R) R) monad.Monad[R, func(R) R] {
	return Bind(monad.As[Either[L, R]](m, "either.Either"), f)
}

func (m Either[L, R]) String() string {
	if m.isLeft {
		return fmt.Sprintf("Either(left=%v)", m.left)
	}
	return fmt.Sprintf("Either(right=%v)", m.right)
}
