package result

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError is anything that holds a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithError[int] = Result[int]{}
