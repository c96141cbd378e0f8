package lazy

import (
	"fmt"
	"sync"
)

type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

type loader[T any] struct {
	provider func() (T, error)

	mutex    sync.Mutex
	done     bool
	isLoaded bool
	value    T
	err      error
}

// New returns a Loader calling provider at most once, on the first Load.
// A failed load is remembered and returned on every subsequent call.
func New[T any](provider func() (T, error)) Loader[T] {
	return &loader[T]{provider: provider}
}

// Value wraps an already available value.
func Value[T any](value T) Loader[T] {
	return &loader[T]{done: true, isLoaded: true, value: value}
}

func (l *loader[T]) MustLoad() T {
	value, err := l.Load()
	if err != nil {
		panic(err)
	}

	return value
}

func (l *loader[T]) Load() (T, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.done {
		return l.value, l.err
	}
	l.done = true

	value, err := l.provider()
	if err != nil {
		l.err = fmt.Errorf("load value of %T: %w", l.value, err)
		return l.value, l.err
	}

	l.isLoaded = true
	l.value = value
	return l.value, nil
}

func (l *loader[T]) IfLoaded(f func(T)) {
	l.mutex.Lock()
	isLoaded, value := l.isLoaded, l.value
	l.mutex.Unlock()

	if isLoaded {
		f(value)
	}
}
