package core

import (
	"github.com/pebblelang/pebble/internal/utils"
)

var (
	_ = []Sequence{String("")}
)

// String is the language's immutable string type. Strings are sequences of
// bytes: indexing, slicing and ordering all operate on the underlying bytes,
// there is no Unicode-aware collation.
type String string

func (s String) Len() int {
	return len(s)
}

func (s String) At(ctx *Context, i int) Value {
	return Byte(s[i])
}

func (s String) slice(start, end int) Sequence {
	return s[start:end]
}

// Repeat returns a new string made of times concatenated copies of s.
func (s String) Repeat(times int) String {
	if times < 0 {
		panic(ErrNegativeRepetitionCount)
	}
	repeated := make([]byte, times*len(s))
	MultiplySequence(repeated, utils.StringAsBytes(s), times)
	return String(utils.BytesAsString(repeated))
}

// Slice returns the substring described by spec, bounds are normalized with
// NormalizeSliceSpec.
func (s String) Slice(spec SliceSpec) (String, error) {
	r, err := NormalizeSliceSpec(int64(len(s)), spec)
	if err != nil {
		return "", err
	}
	return s[r.Begin:r.End], nil
}

// UnderlyingBytes returns a view of the string's bytes, the result should NOT
// be modified.
func (s String) UnderlyingBytes() []byte {
	return utils.StringAsBytes(s)
}
