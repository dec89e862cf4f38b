package resilience

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent calls for the same key and hands every
// caller the same typed result.
type Group[V any] struct {
	g singleflight.Group
}

// Do runs fn once per in-flight key. shared reports whether the result was
// handed to more than one caller.
func (g *Group[V]) Do(key string, fn func() (V, error)) (v V, shared bool, err error) {
	out, err, shared := g.g.Do(key, func() (any, error) {
		return fn()
	})
	if out != nil {
		v = out.(V)
	}
	return v, shared, err
}

// Forget drops key so the next Do starts a fresh call.
func (g *Group[V]) Forget(key string) {
	g.g.Forget(key)
}
