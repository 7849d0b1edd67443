//go:build unit

package codec

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPutBytes(t *testing.T) {
	t.Run("writes length prefix and data", func(t *testing.T) {
		// Prepare
		buf := make([]byte, 10)

		// Execute
		n, err := PutBytes(buf, []byte{9, 8, 7})

		// Check
		assert.NoError(t, err, "writes bytes")
		assert.Equal(t, 7, n, "prefix plus data written")
		assert.Equal(t, []byte{3, 0, 0, 0, 9, 8, 7, 0, 0, 0}, buf, "little endian length then data")
	})

	t.Run("error on short buffer", func(t *testing.T) {
		// Execute
		n, err := PutBytes(make([]byte, 6), []byte{9, 8, 7})

		// Check
		assert.Zero(t, n, "nothing written")
		assert.True(t, errors.Is(err, BufferTooShort{}), "error is BufferTooShort")
		assert.Equal(t, "buffer too short, needs 7 bytes but has 6", err.Error(), "message states sizes")
	})
}

func TestReadBytes(t *testing.T) {
	t.Run("reads length prefixed data", func(t *testing.T) {
		// Execute
		data, n, err := ReadBytes([]byte{2, 0, 0, 0, 5, 6, 99})

		// Check
		assert.NoError(t, err, "reads bytes")
		assert.Equal(t, 6, n, "prefix plus data consumed")
		assert.Equal(t, []byte{5, 6}, data, "data read")
	})

	t.Run("error on missing prefix", func(t *testing.T) {
		// Execute
		_, _, err := ReadBytes([]byte{2, 0})

		// Check
		assert.True(t, errors.Is(err, BufferTooShort{}), "error is BufferTooShort")
	})

	t.Run("error on truncated data", func(t *testing.T) {
		// Execute
		_, _, err := ReadBytes([]byte{5, 0, 0, 0, 1, 2})

		// Check
		assert.True(t, errors.Is(err, BufferTooShort{}), "error is BufferTooShort")
	})
}

func TestUint64(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		// Prepare
		buf := make([]byte, Uint64Length)

		// Execute
		wn, err := PutUint64(buf, 0x0102030405060708)
		assert.NoError(t, err, "writes number")
		v, rn, err := ReadUint64(buf)

		// Check
		assert.NoError(t, err, "reads number")
		assert.Equal(t, Uint64Length, wn, "8 bytes written")
		assert.Equal(t, Uint64Length, rn, "8 bytes read")
		assert.Equal(t, uint64(0x0102030405060708), v, "number restored")
		assert.Equal(t, byte(8), buf[0], "little endian")
	})
}

func TestErrors(t *testing.T) {
	t.Run("default messages", func(t *testing.T) {
		// Check
		assert.Equal(t, "buffer too short", BufferTooShort{}.Error(), "default message")
		assert.Equal(t, "invalid header", InvalidHeader{}.Error(), "default message")
		assert.Equal(t, "bad magic", NewInvalidHeader("bad magic").Error(), "custom message")
	})
}
