package imdb

import (
	"github.com/mhmtszr/concurrent-swiss-map"
)

// memo holds per-object results keyed by query or page name. It never
// evicts and never stores failures.
type memo struct {
	m *csmap.CsMap[string, any]
}

func newMemo() *memo {
	return &memo{m: csmap.Create[string, any]()}
}

// remember returns the stored value for key or computes and stores it.
func remember[T any](m *memo, key string, fn func() (T, error)) (T, error) {
	if v, ok := m.m.Load(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	m.m.Store(key, v)
	return v, nil
}
