package core

import "errors"

var (
	ErrElementNotFound     = errors.New("element not in sequence")
	ErrDestinationTooSmall = errors.New("destination cannot hold the repeated sequence")
)

// MultiplySequence implements the backend of the `sequence * integer`
// operation: it writes times back-to-back copies of items into dest. The
// caller is responsible for sizing dest to hold at least times * len(items)
// elements. Copies are shallow, composite elements are repeated by reference.
func MultiplySequence[E any](dest []E, items []E, times int) {
	if len(dest) < times*len(items) {
		panic(ErrDestinationTooSmall)
	}
	for i := 0; i < times; i++ {
		copy(dest[i*len(items):], items)
	}
}

// IndexOfValue returns the index of the first element of items equal to
// target, or ErrElementNotFound. Up to two bounds restrict the search to a
// sub-range [start, stop): they may be negative and are clamped into
// [0, len(items)] like slice bounds.
func IndexOfValue(ctx *Context, items []Value, target Value, bounds ...Int) (Int, error) {
	length := int64(len(items))
	start, stop := int64(0), length

	if len(bounds) >= 1 {
		start = resolveSearchIndex(length, int64(bounds[0]))
		if len(bounds) >= 2 {
			stop = resolveSearchIndex(length, int64(bounds[1]))
		}
	}

	for i := start; i < stop; i++ {
		if valueEqual(ctx, items[i], target) {
			return Int(i), nil
		}
	}
	return 0, ErrElementNotFound
}

// CountValue returns the number of elements of items equal to target.
func CountValue(ctx *Context, items []Value, target Value) Int {
	count := Int(0)
	for _, item := range items {
		if valueEqual(ctx, item, target) {
			count++
		}
	}
	return count
}
