package core

import (
	"fmt"
	"math"
	"testing"

	"github.com/pebblelang/pebble/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSliceSpec(t *testing.T) {

	t.Run("absent bounds give the full range", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{}))
		assert.Equal(t, NormalizedRange{Begin: 0, End: 5}, r)

		r = utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Nil, Stop: Nil, Step: Nil}))
		assert.Equal(t, NormalizedRange{Begin: 0, End: 5}, r)
	})

	t.Run("in-bounds positive bounds", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(1), Stop: Int(3)}))
		assert.Equal(t, NormalizedRange{Begin: 1, End: 3}, r)
	})

	t.Run("negative start counts from the end", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(-2)}))
		assert.Equal(t, NormalizedRange{Begin: 3, End: 5}, r)
	})

	t.Run("out-of-range negative start clamps to zero", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(-100)}))
		assert.Equal(t, NormalizedRange{Begin: 0, End: 5}, r)
	})

	t.Run("start beyond the length clamps to the length", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(100)}))
		assert.Equal(t, NormalizedRange{Begin: 5, End: 5}, r)
	})

	t.Run("swapped bounds give an empty range anchored at start", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(3), Stop: Int(1)}))
		assert.Equal(t, NormalizedRange{Begin: 3, End: 3}, r)
	})

	t.Run("out-of-range negative stop with absent start", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Stop: Int(-10)}))
		assert.Equal(t, NormalizedRange{Begin: 0, End: 0}, r)
	})

	//The clamping of the two bounds is asymmetric on purpose: an out-of-range
	//negative stop anchors at the normalized start, not at 0.
	t.Run("out-of-range negative stop anchors at the normalized start", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(2), Stop: Int(-100)}))
		assert.Equal(t, NormalizedRange{Begin: 2, End: 2}, r)

		r = utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(-1), Stop: Int(-100)}))
		assert.Equal(t, NormalizedRange{Begin: 4, End: 4}, r)
	})

	t.Run("stop beyond the length clamps to the length", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(5, SliceSpec{Start: Int(1), Stop: Int(100)}))
		assert.Equal(t, NormalizedRange{Begin: 1, End: 5}, r)
	})

	t.Run("empty sequence", func(t *testing.T) {
		r := utils.Must(NormalizeSliceSpec(0, SliceSpec{Start: Int(-3), Stop: Int(3)}))
		assert.Equal(t, NormalizedRange{Begin: 0, End: 0}, r)
		assert.Zero(t, r.Len())
	})

	t.Run("a step of 1 is supported", func(t *testing.T) {
		r, err := NormalizeSliceSpec(5, SliceSpec{Step: Int(1)})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, NormalizedRange{Begin: 0, End: 5}, r)
	})

	t.Run("any other step is rejected", func(t *testing.T) {
		_, err := NormalizeSliceSpec(5, SliceSpec{Step: Int(2)})
		assert.ErrorIs(t, err, ErrUnsupportedSliceStep)

		_, err = NormalizeSliceSpec(5, SliceSpec{Step: Int(-1)})
		assert.ErrorIs(t, err, ErrUnsupportedSliceStep)

		_, err = NormalizeSliceSpec(5, SliceSpec{Step: Bool(true)})
		assert.ErrorIs(t, err, ErrUnsupportedSliceStep)
	})

	t.Run("non-integer bounds are a caller bug", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrUnexpectedSliceBoundType, func() {
			NormalizeSliceSpec(5, SliceSpec{Start: String("a")})
		})
	})

	t.Run("the result is always in bounds", func(t *testing.T) {
		bounds := []Value{
			nil,
			Int(math.MinInt64), Int(math.MaxInt64),
			Int(-100), Int(100),
			Int(-7), Int(-6), Int(-5), Int(-4), Int(-3), Int(-2), Int(-1),
			Int(0), Int(1), Int(2), Int(3), Int(4), Int(5), Int(6), Int(7),
		}

		for length := int64(0); length <= 6; length++ {
			for _, start := range bounds {
				for _, stop := range bounds {
					name := fmt.Sprintf("length=%d start=%#v stop=%#v", length, start, stop)

					r := utils.Must(NormalizeSliceSpec(length, SliceSpec{Start: start, Stop: stop}))
					if !assert.True(t, 0 <= r.Begin && r.Begin <= r.End && r.End <= length, name) {
						return
					}
				}
			}
		}
	})
}
