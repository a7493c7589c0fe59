// Package lawtest holds the property checks shared by the variant tests:
// identity and composition of the map-like Bind, the three monad laws of
// FlatBind, immutability snapshots and call-counting steps.
package lawtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Case describes a variant whose Bind takes a plain A -> A step.
type Case[M, A any] struct {
	Name string
	Unit func(A) M
	Bind func(M, func(A) A) M
	// Equal defaults to assert.Equal when nil
	Equal func(a, b M) bool
	// Snapshot projects the observable state of an instance
	Snapshot func(M) any
}

// FlatCase describes a variant whose FlatBind takes an A -> M step.
type FlatCase[M, A any] struct {
	Name     string
	Unit     func(A) M
	FlatBind func(M, func(A) M) M
	Equal    func(a, b M) bool
}

func same[M any](t testing.TB, eq func(a, b M) bool, want, got M, msg string) bool {
	t.Helper()
	if eq == nil {
		return assert.Equal(t, want, got, msg)
	}
	return assert.True(t, eq(want, got), "%s: want %v, got %v", msg, want, got)
}

// Identity checks Bind(Unit(x), id) == Unit(x).
func Identity[M, A any](t testing.TB, c Case[M, A], xs ...A) {
	t.Helper()
	id := func(a A) A { return a }
	for _, x := range xs {
		same(t, c.Equal, c.Unit(x), c.Bind(c.Unit(x), id), c.Name+": identity")
	}
}

// Composition checks Bind(Bind(m, f), g) == Bind(m, g.f).
func Composition[M, A any](t testing.TB, c Case[M, A], f, g func(A) A, xs ...A) {
	t.Helper()
	for _, x := range xs {
		m := c.Unit(x)
		left := c.Bind(c.Bind(m, f), g)
		right := c.Bind(m, func(a A) A { return g(f(a)) })
		same(t, c.Equal, left, right, c.Name+": composition")
	}
}

// Immutable checks that binding m leaves its observable state untouched.
func Immutable[M, A any](t testing.TB, c Case[M, A], m M, f func(A) A) {
	t.Helper()
	before := c.Snapshot(m)
	_ = c.Bind(m, f)
	_ = c.Bind(c.Bind(m, f), f)
	assert.Equal(t, before, c.Snapshot(m), c.Name+": bind mutated its input")
}

// Laws checks left identity, right identity and associativity of FlatBind.
func Laws[M, A any](t testing.TB, c FlatCase[M, A], f, g func(A) M, xs ...A) {
	t.Helper()
	for _, x := range xs {
		same(t, c.Equal, f(x), c.FlatBind(c.Unit(x), f), c.Name+": left identity")

		m := f(x)
		same(t, c.Equal, m, c.FlatBind(m, c.Unit), c.Name+": right identity")

		left := c.FlatBind(c.FlatBind(m, f), g)
		right := c.FlatBind(m, func(a A) M { return c.FlatBind(f(a), g) })
		same(t, c.Equal, left, right, c.Name+": associativity")
	}
}

// Counter wraps a step and records how often it ran.
type Counter[A, B any] struct {
	f     func(A) B
	calls int
}

func Count[A, B any](f func(A) B) *Counter[A, B] {
	return &Counter[A, B]{f: f}
}

func (c *Counter[A, B]) Step(a A) B {
	c.calls++
	return c.f(a)
}

func (c *Counter[A, B]) Calls() int {
	return c.calls
}

// Square is the demo step used across the variant tests.
func Square(x int) int {
	return x * x
}
