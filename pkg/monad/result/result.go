package result

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/monads/pkg/monad"
)

var ErrNilFailure = errors.New("result: failure without an error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed result. A nil err is replaced by ErrNilFailure.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Unit[T any](v T) Result[T] {
	return Ok(v)
}

// FailFrom carries a failure into another value type, keeping its id and
// creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Get returns the value and the error, in the usual Go order.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (Result[T]) Unit(x T) monad.Monad[T, func(T) T] {
	return Ok(x)
}

func (Result[T]) Bind(m monad.Monad[T, func(T) T], f func(T) T) monad.Monad[T, func(T) T] {
	return Bind(monad.As[Result[T]](m, "result.Result"), f)
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Fail(%v)", r.err)
}
