package core

import (
	"testing"

	"github.com/pebblelang/pebble/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	ctx := NewContext(ContextConfig{})

	t.Run("repetition", func(t *testing.T) {
		assert.Equal(t, String("ababab"), String("ab").Repeat(3))
		assert.Equal(t, String(""), String("ab").Repeat(0))
		assert.Equal(t, String(""), String("").Repeat(1000))
	})

	t.Run("slicing", func(t *testing.T) {
		assert.Equal(t, String("de"), utils.Must(String("abcde").Slice(SliceSpec{Start: Int(-2)})))
		assert.Equal(t, String(""), utils.Must(String("abcde").Slice(SliceSpec{Start: Int(2), Stop: Int(-100)})))

		_, err := String("abcde").Slice(SliceSpec{Step: Int(2)})
		assert.ErrorIs(t, err, ErrUnsupportedSliceStep)
	})

	t.Run("indexing yields bytes", func(t *testing.T) {
		assert.Equal(t, Byte('b'), String("ab").At(ctx, 1))
	})

	t.Run("ordering is byte-wise", func(t *testing.T) {
		assert.True(t, bool(CompareByteSequences(LessOp, String("ab").UnderlyingBytes(), String("abc").UnderlyingBytes())))

		result, comparable := String("ab").Compare(String("abc"))
		assert.True(t, comparable)
		assert.Equal(t, -1, result)
	})
}
