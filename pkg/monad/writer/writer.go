package writer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"

	"github.com/ib-77/monads/pkg/monad"
)

var ErrNoDefaultCombine = errors.New("writer: no default combine for a non-slice log")

// Combine merges a log fragment into the running log.
type Combine[L, F any] func(log L, fragment F) L

type Writer[A, L, F any] struct {
	x       A
	log     L
	combine Combine[L, F]
}

// Append is the default combine policy. It never writes into the backing
// array of log, so writers bound from the same origin stay independent.
func Append[F any](log []F, fragment F) []F {
	out := make([]F, len(log), len(log)+1)
	copy(out, log)
	return append(out, fragment)
}

// Unit starts a writer with an empty slice log and the Append policy.
func Unit[A, F any](x A) Writer[A, []F, F] {
	return Writer[A, []F, F]{x: x, log: []F{}, combine: Append[F]}
}

// New starts a writer with a custom log and combine policy.
func New[A, L, F any](x A, log L, combine func(L, F) L) Writer[A, L, F] {
	monad.MustStep(combine)
	return Writer[A, L, F]{x: x, log: log, combine: combine}
}

// Bind runs f on the current value and merges its fragment into the log.
// The combine policy of m is carried into the result.
func Bind[A, B, L, F any](m Writer[A, L, F], f func(A) (B, F)) Writer[B, L, F] {
	monad.MustStep(f)
	monad.MustStep(m.combine)
	x, fragment := f(m.x)
	return Writer[B, L, F]{x: x, log: m.combine(m.log, fragment), combine: m.combine}
}

// Tell merges fragment into the log and keeps the value.
func Tell[A, L, F any](m Writer[A, L, F], fragment F) Writer[A, L, F] {
	monad.MustStep(m.combine)
	return Writer[A, L, F]{x: m.x, log: m.combine(m.log, fragment), combine: m.combine}
}

// Censor replaces the log with f applied to it.
func Censor[A, L, F any](m Writer[A, L, F], f func(L) L) Writer[A, L, F] {
	monad.MustStep(f)
	return Writer[A, L, F]{x: m.x, log: f(m.log), combine: m.combine}
}

// Drain emits every fragment of a slice log as one log entry and returns the
// value.
func Drain[A, F any](logger logr.Logger, m Writer[A, []F, F], msg string) A {
	for i, fragment := range m.log {
		logger.Info(msg, "step", i, "entry", fragment)
	}
	return m.x
}

// Run returns the value and the accumulated log.
func (m Writer[A, L, F]) Run() (A, L) {
	return m.x, m.log
}

// Exec returns the value and discards the log.
func (m Writer[A, L, F]) Exec() A {
	return m.x
}

func (m Writer[A, L, F]) Log() L {
	return m.log
}

// Unit keeps the combine policy of m, or Append when m has none, and starts
// from an empty log. A zero Writer with a non-slice log has no default policy.
func (m Writer[A, L, F]) Unit(x A) monad.Monad[A, func(A) (A, F)] {
	var log L
	if empty, ok := any([]F{}).(L); ok {
		log = empty
	}
	combine := m.combine
	if combine == nil {
		def, ok := any(Combine[[]F, F](Append[F])).(Combine[L, F])
		if !ok {
			panic(ErrNoDefaultCombine)
		}
		combine = def
	}
	return Writer[A, L, F]{x: x, log: log, combine: combine}
}

func (Writer[A, L, F]) Bind(m monad.Monad[A, func(A) (A, F)], f func(A) (A, F)) monad.Monad[A, func(A) (A, F)] {
	return Bind(monad.As[Writer[A, L, F]](m, "writer.Writer"), f)
}

func (m Writer[A, L, F]) String() string {
	return fmt.Sprintf("Writer(%v, %v)", m.x, m.log)
}

// Fragments returns a copy of a slice log.
func Fragments[A, F any](m Writer[A, []F, F]) []F {
	return slices.Clone(m.log)
}
