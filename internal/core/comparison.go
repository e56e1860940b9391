package core

import (
	"reflect"
)

// Value types' implementations of Value.Equal

const (
	MAX_COMPARISON_DEPTH = 200
)

// valueEqual compares two values that are not part of an ongoing deep
// comparison.
func valueEqual(ctx *Context, a, b Value) bool {
	return a.Equal(ctx, b, map[uintptr]uintptr{}, 0)
}

func (Nil NilT) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	switch other.(type) {
	case NilT:
		return true
	case nil:
		return false
	default:
		rval := reflect.ValueOf(other)
		if rval.IsValid() && rval.Kind() == reflect.Pointer {
			return rval.IsNil()
		}
		return false
	}
}

func (boolean Bool) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherBool, ok := other.(Bool)
	return ok && otherBool == boolean
}

func (i Int) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherInt, ok := other.(Int)
	return ok && otherInt == i
}

func (f Float) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherFloat, ok := other.(Float)
	return ok && otherFloat == f
}

func (b Byte) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherByte, ok := other.(Byte)
	return ok && otherByte == b
}

func (r Rune) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherRune, ok := other.(Rune)
	return ok && otherRune == r
}

func (s String) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherString, ok := other.(String)
	return ok && otherString == s
}

func (t *Tuple) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		return false
	}

	otherTuple, ok := other.(*Tuple)
	if !ok {
		return false
	}

	return sequenceElementsEqual(ctx, t.elements, otherTuple.elements, t, otherTuple, alreadyCompared, depth)
}

func (l *List) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	if depth > MAX_COMPARISON_DEPTH {
		return false
	}

	otherList, ok := other.(*List)
	if !ok {
		return false
	}

	return sequenceElementsEqual(ctx, l.elements, otherList.elements, l, otherList, alreadyCompared, depth)
}

func (slice *ByteSlice) Equal(ctx *Context, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	otherSlice, ok := other.(*ByteSlice)
	if !ok {
		return false
	}
	return bool(CompareByteSequences(EqualOp, slice.bytes, otherSlice.bytes))
}

func sequenceElementsEqual(ctx *Context, elements, otherElements []Value, self, other Value, alreadyCompared map[uintptr]uintptr, depth int) bool {
	if len(elements) != len(otherElements) {
		return false
	}

	addr := reflect.ValueOf(self).Pointer()
	otherAddr := reflect.ValueOf(other).Pointer()

	if addr == otherAddr {
		return true
	}

	if alreadyCompared[addr] == otherAddr || alreadyCompared[otherAddr] == addr {
		//we return true to prevent cycling
		return true
	}

	alreadyCompared[addr] = otherAddr
	alreadyCompared[otherAddr] = addr

	for i, e := range elements {
		if !e.Equal(ctx, otherElements[i], alreadyCompared, depth+1) {
			return false
		}
	}
	return true
}
