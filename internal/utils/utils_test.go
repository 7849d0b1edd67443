//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsEqual(t *testing.T) {
	t.Run("two byte slices are equal in length and values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.True(t, isEqual, "slices equal in length and values")
	})

	t.Run("two byte slices are unequal in length", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in length")
	})

	t.Run("two byte slices are unequal in values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 5, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in length")
	})
}

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to nearest power of 2", func(t *testing.T) {
		// Execute
		r := RoundUp2(10)

		// Check
		assert.Equal(t, int64(16), r, "10 rounds up to 16")
	})

	t.Run("keeps a power of 2 as is", func(t *testing.T) {
		// Execute
		r := RoundUp2(32)

		// Check
		assert.Equal(t, int64(32), r, "32 stays 32")
	})

	t.Run("returns 1 for values below 2", func(t *testing.T) {
		// Check
		assert.Equal(t, int64(1), RoundUp2(0), "0 rounds up to 1")
		assert.Equal(t, int64(1), RoundUp2(1), "1 stays 1")
	})
}
