package service

import (
	"fmt"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
)

// Result carries either a value or the error that prevented it.
type Result[T any] struct {
	Value T
	Err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) IsSuccess() bool { return r.Err == nil }

// GetOrNil returns the value and whether it is present.
func (r Result[T]) GetOrNil() (T, bool) {
	if r.Err != nil {
		var zero T
		return zero, false
	}
	return r.Value, true
}

func (r Result[T]) ExceptionOrNil() error { return r.Err }

// fire runs block and folds every error, and any panic raised while calling the
// remote API or decoding its answer, into a single failed Result.
func fire[T any](op string, block func() (T, error)) (result Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("%s panicked: %v", op, rec)
			config.GetLogger().Errorw("Recovered panic", "op", op, "error", err)
			result = Failure[T](err)
		}
	}()

	v, err := block()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
