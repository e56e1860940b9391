package core

import (
	"errors"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ErrNotComparable = errors.New("not comparable")

	_ = []Comparable{Int(0), Float(0), Byte(0), Rune(0), String("")}
)

type Comparable interface {
	Value
	//Compare should return (0, false) if the values are not comparable. Otherwise it should return true and one of the following:
	// (-1) a < b
	// (0) a == b
	// (1) a > b
	// The Equal method of the implementations should be consistent with Compare.
	Compare(b Value) (result int, comparable bool)
}

func (i Int) Compare(other Value) (result int, comparable bool) {
	return intCompare(i, other)
}

func (f Float) Compare(other Value) (result int, comparable bool) {
	return float64Compare(f, other)
}

func (b Byte) Compare(other Value) (result int, comparable bool) {
	return intCompare(b, other)
}

func (r Rune) Compare(other Value) (result int, comparable bool) {
	return intCompare(r, other)
}

// Strings order byte-wise, consistently with CompareByteSequences.
func (s String) Compare(other Value) (result int, comparable bool) {
	otherString, ok := other.(String)
	if !ok {
		//not comparable
		return
	}
	comparable = true
	result = strings.Compare(string(s), string(otherString))
	return
}

func intCompare[I constraints.Integer](i I, other Value) (result int, comparable bool) {
	otherInt, ok := other.(I)
	if !ok {
		//not comparable
		return
	}
	comparable = true
	result = _intCompare(i, otherInt)
	return
}

func _intCompare[I constraints.Integer](i I, other I) int {
	if i < other {
		return -1
	}
	if i == other {
		return 0
	}
	return 1
}

func float64Compare[F ~float64](f F, other Value) (result int, comparable bool) {
	otherFloat, ok := other.(F)
	if !ok ||
		math.IsNaN(float64(f)) ||
		math.IsNaN(float64(otherFloat)) ||
		math.IsInf(float64(f), 0) ||
		math.IsInf(float64(otherFloat), 0) {
		//not comparable
		return
	}
	comparable = true
	if f < otherFloat {
		result = -1
		return
	}
	if f == otherFloat {
		return //0
	}
	result = 1
	return
}
