package result

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/either"
)

// Bind maps a successful value. A failure is surfaced with its provenance and
// onSuccess is not called.
func Bind[In, Out any](input Result[In], onSuccess func(In) Out) Result[Out] {
	monad.MustStep(onSuccess)
	if input.IsSuccess() {
		return Ok(onSuccess(input.Value()))
	}
	return FailFrom[In, Out](input)
}

// FlatBind moves from Result[In] to Result[Out] with a result-returning step.
func FlatBind[In, Out any](input Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	monad.MustStep(onSuccess)
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return FailFrom[In, Out](input)
}

// Try calls an (Out, error) step and turns its error into a failure.
func Try[In, Out any](input Result[In], onTryExecute func(In) (Out, error)) Result[Out] {
	monad.MustStep(onTryExecute)
	if input.IsFailure() {
		return FailFrom[In, Out](input)
	}
	out, err := onTryExecute(input.Value())
	if err != nil {
		return Fail[Out](err)
	}
	return Ok(out)
}

// Validate fails the result with errMsg when validate rejects its value.
func Validate[T any](input Result[T], validate func(T) (isValid bool, errMsg string)) Result[T] {
	monad.MustStep(validate)
	if input.IsFailure() {
		return input
	}
	if isValid, errMsg := validate(input.Value()); !isValid {
		return Fail[T](errors.New(errMsg))
	}
	return input
}

// Finally reduces the result to a concrete value.
func Finally[In, Out any](input Result[In], onSuccess func(In) Out, onError func(error) Out) Out {
	if input.IsSuccess() {
		monad.MustStep(onSuccess)
		return onSuccess(input.Value())
	}
	monad.MustStep(onError)
	return onError(input.Err())
}

// Collect gathers every value in order, or every failure when at least one
// input failed.
func Collect[T any](inputs ...WithError[T]) Result[[]T] {
	var merr *multierror.Error
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if !in.IsSuccess() {
			merr = multierror.Append(merr, in.Err())
			continue
		}
		values = append(values, in.Value())
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Fail[[]T](err)
	}
	return Ok(values)
}

// Errors unwraps an aggregated error into its parts.
func Errors(err error) []error {
	if monad.IsNil(err) {
		return []error{}
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// ToEither drops provenance and moves the failure into the left channel.
func ToEither[T any](r Result[T]) either.Either[error, T] {
	if r.IsSuccess() {
		return either.Right[error](r.Value())
	}
	return either.Left[error, T](r.Err())
}

// FromEither builds a fresh result from an Either with an error left.
func FromEither[T any](e either.Either[error, T]) Result[T] {
	if v, ok := e.Get(); ok {
		return Ok(v)
	}
	return Fail[T](e.Left())
}
