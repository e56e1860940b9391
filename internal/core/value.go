package core

// Value is the interface implemented by all values of the language.
type Value interface {
	// IsMutable tells whether the value itself can be mutated (not whether a
	// variable holding it can be re-assigned).
	IsMutable() bool

	// Equal reports deep equality with other. alreadyCompared maps the address of
	// already-visited composite values to the address of the value they are being
	// compared against, it protects against reference cycles.
	Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool
}

// NilT is the type of Nil.
type NilT int

const Nil = NilT(0)

// Bool implements Value.
type Bool bool

const (
	True  = Bool(true)
	False = Bool(false)
)

// Int implements Value.
type Int int64

// Float implements Value.
type Float float64

// Rune implements Value.
type Rune rune
