package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSize(t *testing.T) {
	t.Run("exact ring size match", func(t *testing.T) {
		size, custom := NormalizeSize("ARO_14")

		assert.Equal(t, SizeAro14, size)
		assert.Empty(t, custom)
	})

	t.Run("exact necklace size match", func(t *testing.T) {
		size, custom := NormalizeSize("CM_45")

		assert.Equal(t, SizeCm45, size)
		assert.Empty(t, custom)
	})

	t.Run("unmatched text falls back to custom with verbatim override", func(t *testing.T) {
		size, custom := NormalizeSize("15.5mm")

		assert.Equal(t, SizeCustom, size)
		assert.Equal(t, "15.5mm", custom)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		size, custom := NormalizeSize("aro_14")

		assert.Equal(t, SizeCustom, size)
		assert.Equal(t, "aro_14", custom)
	})

	t.Run("explicit PERSONALIZADO keeps no override text", func(t *testing.T) {
		size, custom := NormalizeSize("PERSONALIZADO")

		assert.Equal(t, SizeCustom, size)
		assert.Empty(t, custom)
	})

	t.Run("empty text is custom", func(t *testing.T) {
		size, custom := NormalizeSize("")

		assert.Equal(t, SizeCustom, size)
		assert.Empty(t, custom)
	})
}

func TestItemSizeValid(t *testing.T) {
	assert.True(t, SizeAro12.Valid())
	assert.True(t, SizeMm10.Valid())
	assert.True(t, SizeOne.Valid())
	assert.True(t, SizeCustom.Valid())
	assert.False(t, ItemSize("ARO_99").Valid())
	assert.False(t, ItemSize("").Valid())
}
