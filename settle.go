package pdftext

import "fmt"

// Settled holds the result of an operation that may fail independently of
// its siblings.
type Settled[T any] struct {
	Value T
	Err   error
}

// OK reports whether the operation succeeded.
func (s Settled[T]) OK() bool {
	return s.Err == nil
}

// ValueOr returns the value, or def if the operation failed.
func (s Settled[T]) ValueOr(def T) T {
	if s.Err != nil {
		return def
	}
	return s.Value
}

// Settle runs fn and captures its result. A panic is converted to an error.
func Settle[T any](fn func() (T, error)) (s Settled[T]) {
	defer func() {
		if r := recover(); r != nil {
			s = Settled[T]{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	v, err := fn()
	return Settled[T]{Value: v, Err: err}
}
