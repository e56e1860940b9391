package core

import "errors"

var (
	ErrUnsupportedSliceStep     = errors.New("only slices with step=1 (aka nil) are supported")
	ErrUnexpectedSliceBoundType = errors.New("slice bounds should be integers")
)

// A SliceSpec is a possibly partial slice expression produced by the evaluator.
// A nil (or Nil) field is an absent bound. Start and Stop must be Int values
// when present, Step must be Int(1) when present.
type SliceSpec struct {
	Start, Stop, Step Value
}

// A NormalizedRange is a half-open [Begin, End) index pair. Ranges returned by
// NormalizeSliceSpec always satisfy 0 <= Begin <= End <= length for the length
// they were normalized against.
type NormalizedRange struct {
	Begin, End int64
}

func (r NormalizedRange) Len() int64 {
	return r.End - r.Begin
}

// NormalizeSliceSpec turns a slice expression into an in-bounds index pair for
// a sequence of the given length. Unlike subscription, out-of-bounds slice
// bounds are never an error: they are clamped, and swapped or non-overlapping
// bounds degrade to an empty range. The only failure is a step other than 1.
func NormalizeSliceSpec(length int64, spec SliceSpec) (NormalizedRange, error) {
	if !isAbsentBound(spec.Step) {
		step, ok := spec.Step.(Int)
		if !ok || step != 1 {
			return NormalizedRange{}, ErrUnsupportedSliceStep
		}
	}

	start := int64(0)
	if !isAbsentBound(spec.Start) {
		start = sliceBoundValue(spec.Start)
	}
	stop := length
	if !isAbsentBound(spec.Stop) {
		stop = sliceBoundValue(spec.Stop)
	}

	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	} else if start > length {
		start = length
	}

	if stop < 0 {
		stop += length
		// a still-negative stop anchors at the normalized start, not at 0:
		// s[2:-100] is empty even when s[0:-100] would not be.
		if stop < 0 {
			stop = start
		}
	} else if stop > length {
		stop = length
	}

	if start > stop {
		stop = start
	}

	return NormalizedRange{Begin: start, End: stop}, nil
}

// resolveSearchIndex resolves a possibly negative sub-range bound of a search
// operation, clamping it into [0, length].
func resolveSearchIndex(length, i int64) int64 {
	if i < 0 {
		i += length
		if i < 0 {
			i = 0
		}
	} else if i > length {
		i = length
	}
	return i
}

func isAbsentBound(v Value) bool {
	return v == nil || v == Nil
}

func sliceBoundValue(v Value) int64 {
	i, ok := v.(Int)
	if !ok {
		panic(ErrUnexpectedSliceBoundType)
	}
	return int64(i)
}
