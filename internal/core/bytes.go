package core

import (
	"errors"

	"github.com/pebblelang/pebble/internal/utils"
)

var (
	ErrAttemptToMutateReadonlyByteSlice = errors.New("attempt to write a readonly byte slice")

	_ = []Sequence{(*ByteSlice)(nil)}
)

// ByteSlice implements Value, its mutability is set at creation.
type ByteSlice struct {
	bytes         []byte
	isDataMutable bool
}

func NewByteSlice(bytes []byte, mutable bool) *ByteSlice {
	return &ByteSlice{bytes: bytes, isDataMutable: mutable}
}

func NewMutableByteSlice(bytes []byte) *ByteSlice {
	return NewByteSlice(bytes, true)
}

func NewImmutableByteSlice(bytes []byte) *ByteSlice {
	return NewByteSlice(bytes, false)
}

// UnderlyingBytes returns the wrapped byte slice, the result should NOT be
// modified.
func (slice *ByteSlice) UnderlyingBytes() []byte {
	return slice.bytes
}

func (slice *ByteSlice) UnsafeBytesAsString() string {
	return utils.BytesAsString(slice.bytes)
}

func (slice *ByteSlice) Len() int {
	return len(slice.bytes)
}

func (slice *ByteSlice) At(ctx *Context, i int) Value {
	return Byte(slice.bytes[i])
}

func (slice *ByteSlice) set(ctx *Context, i int, v Value) {
	if !slice.isDataMutable {
		panic(ErrAttemptToMutateReadonlyByteSlice)
	}
	slice.bytes[i] = byte(v.(Byte))
}

func (slice *ByteSlice) slice(start, end int) Sequence {
	sliceCopy := make([]byte, end-start)
	copy(sliceCopy, slice.bytes[start:end])

	return &ByteSlice{bytes: sliceCopy, isDataMutable: slice.isDataMutable}
}

// Repeat returns a new byte slice made of times concatenated copies of slice.
func (slice *ByteSlice) Repeat(times int) *ByteSlice {
	if times < 0 {
		panic(ErrNegativeRepetitionCount)
	}
	repeated := make([]byte, times*len(slice.bytes))
	MultiplySequence(repeated, slice.bytes, times)
	return &ByteSlice{bytes: repeated, isDataMutable: slice.isDataMutable}
}

// Slice returns a copy of the sub-slice described by spec, bounds are
// normalized with NormalizeSliceSpec.
func (slice *ByteSlice) Slice(spec SliceSpec) (*ByteSlice, error) {
	r, err := NormalizeSliceSpec(int64(len(slice.bytes)), spec)
	if err != nil {
		return nil, err
	}
	return slice.slice(int(r.Begin), int(r.End)).(*ByteSlice), nil
}

// Compare decides op between slice and another byte slice, the order is
// unsigned-byte lexicographic.
func (slice *ByteSlice) Compare(ctx *Context, op SequenceRelation, other Value) Bool {
	otherSlice, ok := other.(*ByteSlice)
	if !ok {
		panic(ErrSequenceTypesNotComparable)
	}
	return CompareByteSequences(op, slice.bytes, otherSlice.bytes)
}

// Byte implements Value.
type Byte byte

func (b Byte) Int64() int64 {
	return int64(b)
}
