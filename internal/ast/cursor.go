package ast

// Cursor is a handle whose value is computed lazily by Get. Accessors on the
// AST views return Cursor[T] by value so a call site can chain straight into
// Get() (e.g. e.LHS().Get()); the underlying GreenTree.namedChild/namedToken
// already memoizes the actual projection, so Get needs no caching of its
// own — it's a thin value-receiver wrapper, not a second cache layer.
type Cursor[T any] struct {
	compute func() T
}

// NewCursor wraps a thunk in a Cursor.
func NewCursor[T any](compute func() T) Cursor[T] {
	return Cursor[T]{compute: compute}
}

// Get resolves the cursor's value.
func (c Cursor[T]) Get() T {
	var zero T
	if c.compute == nil {
		return zero
	}
	return c.compute()
}
