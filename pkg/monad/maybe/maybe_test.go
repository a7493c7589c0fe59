package maybe

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/monads/internal/lawtest"
	"github.com/ib-77/monads/pkg/monad"
)

type snapshot struct {
	x       int
	present bool
}

var intCase = lawtest.Case[Maybe[int], int]{
	Name: "maybe",
	Unit: Unit[int],
	Bind: Bind[int, int],
	Snapshot: func(m Maybe[int]) any {
		x, ok := m.Get()
		return snapshot{x, ok}
	},
}

func TestBind_Propagation(t *testing.T) {
	t.Parallel()
	out := Bind(Unit(5), lawtest.Square)
	assert.Equal(t, Just(25), out)
	assert.Equal(t, "Maybe(25)", out.String())
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()
	m := Nothing[int]()
	c := lawtest.Count(lawtest.Square)

	out := Bind(m, c.Step)

	assert.Equal(t, m, out)
	assert.Equal(t, 0, c.Calls())
	assert.Equal(t, "Maybe(None)", out.String())
}

func TestBind_ShortCircuitThroughChain(t *testing.T) {
	t.Parallel()
	c := lawtest.Count(strconv.Itoa)
	half := func(x int) Maybe[int] {
		if x%2 != 0 {
			return Nothing[int]()
		}
		return Just(x / 2)
	}

	out := Bind(FlatBind(FlatBind(Just(6), half), half), c.Step)

	assert.False(t, out.IsPresent())
	assert.Equal(t, 0, c.Calls())
	assert.Equal(t, "none", out.OrElse("none"))
}

func TestBind_PresentZeroIsApplied(t *testing.T) {
	t.Parallel()
	c := lawtest.Count(func(x int) int { return x + 1 })
	out := Bind(Just(0), c.Step)
	assert.Equal(t, Just(1), out)
	assert.Equal(t, 1, c.Calls())
}

func TestFromZero(t *testing.T) {
	t.Parallel()
	assert.False(t, FromZero(0).IsPresent())
	assert.False(t, FromZero("").IsPresent())
	assert.True(t, FromZero(3).IsPresent())

	c := lawtest.Count(lawtest.Square)
	_ = Bind(FromZero(0), c.Step)
	assert.Equal(t, 0, c.Calls())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()
	v := 7
	assert.Equal(t, Just(7), FromPtr(&v))
	assert.Equal(t, Nothing[int](), FromPtr[int](nil))
}

func TestGet(t *testing.T) {
	t.Parallel()
	x, ok := Just("a").Get()
	assert.True(t, ok)
	assert.Equal(t, "a", x)

	_, ok = Nothing[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "d", Nothing[string]().OrElse("d"))
}

func TestLaws(t *testing.T) {
	t.Parallel()
	lawtest.Identity(t, intCase, -1, 0, 4)
	lawtest.Composition(t, intCase, lawtest.Square, func(x int) int { return x - 3 }, -1, 0, 4)
	lawtest.Immutable(t, intCase, Just(5), lawtest.Square)
	lawtest.Immutable(t, intCase, Nothing[int](), lawtest.Square)
}

func TestFlatBind_Laws(t *testing.T) {
	t.Parallel()
	positive := func(x int) Maybe[int] {
		if x <= 0 {
			return Nothing[int]()
		}
		return Just(x)
	}
	lawtest.Laws(t, lawtest.FlatCase[Maybe[int], int]{
		Name:     "maybe",
		Unit:     Unit[int],
		FlatBind: FlatBind[int, int],
	}, positive, func(x int) Maybe[int] { return Just(x - 2) }, -2, 0, 1, 5)
}

func TestMonadInterface(t *testing.T) {
	t.Parallel()
	var m monad.Monad[int, func(int) int] = Maybe[int]{}
	assert.Equal(t, Just(25), monad.SBind(m.Unit(5), lawtest.Square))

	c := lawtest.Count(lawtest.Square)
	var none monad.Monad[int, func(int) int] = Nothing[int]()
	assert.Equal(t, none, monad.SBind(none, c.Step))
	assert.Equal(t, 0, c.Calls())
}
