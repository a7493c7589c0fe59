package monad

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented  = errors.New("monad: operation not implemented")
	ErrVariantMismatch = errors.New("monad: variant mismatch")
	ErrNilStep         = errors.New("monad: step function is nil")
)

// Monad is the two-operation contract. A is the inner value type and F the
// shape of the step accepted by Bind.
type Monad[A, F any] interface {
	// Unit lifts x into the context without any extra effect
	Unit(x A) Monad[A, F]
	// Bind sequences f through m and returns a new context value
	Bind(m Monad[A, F], f F) Monad[A, F]
}

// SBind binds f to m itself.
func SBind[A, F any](m Monad[A, F], f F) Monad[A, F] {
	return m.Bind(m, f)
}

// Base is the bare capability with no variant behind it.
type Base[A, F any] struct{}

func (Base[A, F]) Unit(A) Monad[A, F] {
	panic(ErrNotImplemented)
}

func (Base[A, F]) Bind(Monad[A, F], F) Monad[A, F] {
	panic(ErrNotImplemented)
}

// Mismatch builds the panic value for a Bind that received another variant.
func Mismatch(want string, got any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrVariantMismatch, want, got)
}

// As asserts m to the concrete variant V or panics with a mismatch error.
func As[V, A, F any](m Monad[A, F], want string) V {
	v, ok := m.(V)
	if !ok {
		panic(Mismatch(want, m))
	}
	return v
}

// MustStep panics with ErrNilStep when f is nil.
func MustStep(f any) {
	if IsNil(f) {
		panic(ErrNilStep)
	}
}
