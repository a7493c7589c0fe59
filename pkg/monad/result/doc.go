// Package result is an either specialised to error failures. Every result is
// stamped with an id and a UTC creation time; a failure that short-circuits
// a chain keeps both, so the step that produced it can be identified.
//
// Highlights:
// - Ok/Fail/FailFrom: construct Result[T]
// - Bind/FlatBind: map or switch a successful value
// - Try: call a function (Out, error) and convert error to failure
// - Validate: fail with a message on invalid input
// - Collect: gather all values or all failures
// - ToEither/FromEither: bridge to either.Either[error, T]
package result
