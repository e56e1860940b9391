package core

import (
	"errors"

	"github.com/pebblelang/pebble/internal/utils"
)

var (
	ErrCannotPopFromEmptyList     = errors.New("cannot pop from an empty list")
	ErrNegativeRepetitionCount    = errors.New("repetition count should not be negative")
	ErrSequenceTypesNotComparable = errors.New("sequences of different types are not comparable")

	_ = []Sequence{(*Tuple)(nil), (*List)(nil)}
)

// A Tuple is an immutable sequence of values, Tuple implements Value.
type Tuple struct {
	elements []Value
}

func NewTuple(elements ...Value) *Tuple {
	if elements == nil {
		elements = []Value{}
	}
	return &Tuple{elements: elements}
}

func (t *Tuple) Len() int {
	return len(t.elements)
}

func (t *Tuple) At(ctx *Context, i int) Value {
	return t.elements[i]
}

func (t *Tuple) slice(start, end int) Sequence {
	return &Tuple{elements: t.elements[start:end]}
}

// Elements returns a view of the tuple's elements, the result should NOT be
// modified.
func (t *Tuple) Elements() []Value {
	return t.elements
}

// Repeat returns a new tuple made of times concatenated copies of t.
func (t *Tuple) Repeat(times int) *Tuple {
	return &Tuple{elements: repeatElements(t.elements, times)}
}

// Slice returns the sub-tuple described by spec, bounds are normalized with
// NormalizeSliceSpec.
func (t *Tuple) Slice(spec SliceSpec) (*Tuple, error) {
	r, err := NormalizeSliceSpec(int64(len(t.elements)), spec)
	if err != nil {
		return nil, err
	}
	return &Tuple{elements: t.elements[r.Begin:r.End]}, nil
}

// Compare decides op between t and another tuple.
func (t *Tuple) Compare(ctx *Context, op SequenceRelation, other Value) Bool {
	otherTuple, ok := other.(*Tuple)
	if !ok {
		panic(ErrSequenceTypesNotComparable)
	}
	return CompareValueSequences(ctx, op, t.elements, otherTuple.elements)
}

// Index returns the index of the first element equal to target, optionally
// restricted to a [start, stop) sub-range.
func (t *Tuple) Index(ctx *Context, target Value, bounds ...Int) (Int, error) {
	return IndexOfValue(ctx, t.elements, target, bounds...)
}

// Count returns the number of elements equal to target.
func (t *Tuple) Count(ctx *Context, target Value) Int {
	return CountValue(ctx, t.elements, target)
}

// A List is a mutable sequence of values, List implements Value.
type List struct {
	elements []Value
}

func NewList(elements ...Value) *List {
	if elements == nil {
		elements = []Value{}
	}
	return &List{elements: elements}
}

func (l *List) Len() int {
	return len(l.elements)
}

func (l *List) At(ctx *Context, i int) Value {
	return l.elements[i]
}

func (l *List) set(ctx *Context, i int, v Value) {
	l.elements[i] = v
}

func (l *List) slice(start, end int) Sequence {
	return &List{elements: utils.CopySlice(l.elements[start:end])}
}

func (l *List) Append(ctx *Context, elements ...Value) {
	l.elements = append(l.elements, elements...)
}

func (l *List) Pop(ctx *Context) Value {
	lastIndex := len(l.elements) - 1
	if lastIndex < 0 {
		panic(ErrCannotPopFromEmptyList)
	}
	element := l.elements[lastIndex]
	l.elements = l.elements[:lastIndex]
	return element
}

// Repeat returns a new list made of times concatenated copies of l. The copy
// is shallow: the original elements are repeated by reference.
func (l *List) Repeat(times int) *List {
	return &List{elements: repeatElements(l.elements, times)}
}

// Slice returns a copy of the sub-list described by spec, bounds are
// normalized with NormalizeSliceSpec.
func (l *List) Slice(spec SliceSpec) (*List, error) {
	r, err := NormalizeSliceSpec(int64(len(l.elements)), spec)
	if err != nil {
		return nil, err
	}
	return &List{elements: utils.CopySlice(l.elements[r.Begin:r.End])}, nil
}

// Compare decides op between l and another list.
func (l *List) Compare(ctx *Context, op SequenceRelation, other Value) Bool {
	otherList, ok := other.(*List)
	if !ok {
		panic(ErrSequenceTypesNotComparable)
	}
	return CompareValueSequences(ctx, op, l.elements, otherList.elements)
}

// Index returns the index of the first element equal to target, optionally
// restricted to a [start, stop) sub-range.
func (l *List) Index(ctx *Context, target Value, bounds ...Int) (Int, error) {
	return IndexOfValue(ctx, l.elements, target, bounds...)
}

// Count returns the number of elements equal to target.
func (l *List) Count(ctx *Context, target Value) Int {
	return CountValue(ctx, l.elements, target)
}

func repeatElements(elements []Value, times int) []Value {
	if times < 0 {
		panic(ErrNegativeRepetitionCount)
	}
	repeated := make([]Value, times*len(elements))
	MultiplySequence(repeated, elements, times)
	return repeated
}
