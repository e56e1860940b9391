package core

import (
	"bytes"
	"errors"
)

var (
	ErrNotEqualOpNotSupported  = errors.New("sequence comparison does not support !=, negate the result of == instead")
	ErrUnknownSequenceRelation = errors.New("unknown sequence relational operator")
)

// A SequenceRelation is a relational operator applied to two whole sequences.
type SequenceRelation int

const (
	EqualOp SequenceRelation = iota
	NotEqualOp
	LessOp
	LessEqualOp
	GreaterOp
	GreaterEqualOp
)

func (r SequenceRelation) String() string {
	switch r {
	case EqualOp:
		return "=="
	case NotEqualOp:
		return "!="
	case LessOp:
		return "<"
	case LessEqualOp:
		return "<="
	case GreaterOp:
		return ">"
	case GreaterEqualOp:
		return ">="
	default:
		panic(ErrUnknownSequenceRelation)
	}
}

// reduceSequenceRelation rebinds (op, lhs, rhs) so that only ==, > and >=
// remain to be decided: < and <= are the mirrored operator with swapped
// operands. NotEqualOp is a caller bug, not a runtime error.
func reduceSequenceRelation[S any](op SequenceRelation, lhs, rhs S) (SequenceRelation, S, S) {
	switch op {
	case EqualOp, GreaterOp, GreaterEqualOp:
		return op, lhs, rhs
	case LessOp:
		return GreaterOp, rhs, lhs
	case LessEqualOp:
		return GreaterEqualOp, rhs, lhs
	case NotEqualOp:
		panic(ErrNotEqualOpNotSupported)
	default:
		panic(ErrUnknownSequenceRelation)
	}
}

// CompareByteSequences decides op between two byte sequences of independent
// lengths. The order is unsigned-byte lexicographic: the first differing byte
// decides, and on a full prefix tie the shorter operand is the lesser one.
func CompareByteSequences(op SequenceRelation, data1, data2 []byte) Bool {
	if op == EqualOp && len(data1) != len(data2) {
		// sequences of different lengths are never equal, no scan needed
		return false
	}

	op, data1, data2 = reduceSequenceRelation(op, data1, data2)

	minLen := min(len(data1), len(data2))
	res := bytes.Compare(data1[:minLen], data2[:minLen])

	if op == EqualOp {
		return res == 0
	}
	if res != 0 {
		return res > 0
	}
	return resolvePrefixTie(op, len(data1), len(data2))
}

// CompareValueSequences decides op between two sequences of values. Element
// equality uses Value.Equal; ordering is only consulted at the decisive index
// (the first index whose elements are unequal) and requires the element there
// to be Comparable.
func CompareValueSequences(ctx *Context, op SequenceRelation, items1, items2 []Value) Bool {
	if op == EqualOp && len(items1) != len(items2) {
		return false
	}

	op, items1, items2 = reduceSequenceRelation(op, items1, items2)

	minLen := min(len(items1), len(items2))
	for i := 0; i < minLen; i++ {
		if valueEqual(ctx, items1[i], items2[i]) {
			// equal elements decide nothing, go on
			continue
		}
		if op == EqualOp {
			return false
		}
		return relateValues(op, items1[i], items2[i])
	}

	if op == EqualOp {
		return true
	}
	return resolvePrefixTie(op, len(items1), len(items2))
}

// resolvePrefixTie decides > and >= when the overlapping prefixes of the two
// operands are equal: a strict prefix always loses to its extension, and equal
// sequences only satisfy the non-strict relation.
func resolvePrefixTie(op SequenceRelation, len1, len2 int) Bool {
	if len1 != len2 {
		return len1 > len2
	}
	return op == GreaterEqualOp
}

func relateValues(op SequenceRelation, a, b Value) Bool {
	comparableValue, ok := a.(Comparable)
	if !ok {
		panic(ErrNotComparable)
	}
	result, comparable := comparableValue.Compare(b)
	if !comparable {
		panic(ErrNotComparable)
	}
	if op == GreaterOp {
		return result > 0
	}
	return result >= 0
}
