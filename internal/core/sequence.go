package core

var (
	_ = []MutableSequence{(*List)(nil), (*ByteSlice)(nil)}
)

// An Indexable is a Value whose elements can be retrieved by index.
type Indexable interface {
	Value

	// At should panic if the index is out of bounds.
	At(ctx *Context, i int) Value

	Len() int
}

type Sequence interface {
	Indexable

	// slice expects in-bounds indexes: callers resolve user-provided bounds
	// through NormalizeSliceSpec first.
	slice(start, end int) Sequence
}

type MutableSequence interface {
	Sequence

	set(ctx *Context, i int, v Value)
}
