// Package keys provides ready-made key and value types for the chained hash map.
package keys

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/chainmap/codec"
	"github.com/gostonefire/chainmap/internal/utils"
)

// String - A string usable as both key and value
type String string

// Hash - Returns the xxhash of the string contents
func (S String) Hash() uint64 {
	return xxhash.Sum64String(string(S))
}

// Equal - Returns true if other has the same contents
func (S String) Equal(other String) bool {
	return S == other
}

// SerializedSize - Returns the length prefix plus the string length
func (S String) SerializedSize() int {
	return codec.LengthPrefixLength + len(S)
}

// Serialize - Writes the string length prefixed to buf
func (S String) Serialize(buf []byte) (n int, err error) {
	return codec.PutBytes(buf, []byte(S))
}

// Deserialize - Reads a length prefixed string from buf
func (S String) Deserialize(buf []byte) (v String, n int, err error) {
	data, n, err := codec.ReadBytes(buf)
	if err != nil {
		return
	}
	v = String(data)

	return
}

// Bytes - A byte slice usable as both key and value
type Bytes []byte

// Hash - Returns the xxhash of the bytes
func (B Bytes) Hash() uint64 {
	return xxhash.Sum64(B)
}

// Equal - Returns true if other is equal both in size and contents
func (B Bytes) Equal(other Bytes) bool {
	return utils.IsEqual(B, other)
}

// SerializedSize - Returns the length prefix plus the number of bytes
func (B Bytes) SerializedSize() int {
	return codec.LengthPrefixLength + len(B)
}

// Serialize - Writes the bytes length prefixed to buf
func (B Bytes) Serialize(buf []byte) (n int, err error) {
	return codec.PutBytes(buf, B)
}

// Deserialize - Reads length prefixed bytes from buf
func (B Bytes) Deserialize(buf []byte) (v Bytes, n int, err error) {
	data, n, err := codec.ReadBytes(buf)
	if err != nil {
		return
	}
	v = data

	return
}

// Uint64 - An unsigned integer usable as both key and value
type Uint64 uint64

// Hash - Returns the xxhash of the little endian representation
func (U Uint64) Hash() uint64 {
	var b [codec.Uint64Length]byte
	binary.LittleEndian.PutUint64(b[:], uint64(U))
	return xxhash.Sum64(b[:])
}

// Equal - Returns true if other is the same number
func (U Uint64) Equal(other Uint64) bool {
	return U == other
}

// SerializedSize - Always 8 bytes
func (U Uint64) SerializedSize() int {
	return codec.Uint64Length
}

// Serialize - Writes the number as 8 bytes little endian
func (U Uint64) Serialize(buf []byte) (n int, err error) {
	return codec.PutUint64(buf, uint64(U))
}

// Deserialize - Reads 8 bytes little endian
func (U Uint64) Deserialize(buf []byte) (v Uint64, n int, err error) {
	u, n, err := codec.ReadUint64(buf)
	v = Uint64(u)
	return
}

// Int64 - A signed integer usable as both key and value
type Int64 int64

// Hash - Returns the same hash as the Uint64 holding the same bits
func (I Int64) Hash() uint64 {
	return Uint64(I).Hash()
}

// Equal - Returns true if other is the same number
func (I Int64) Equal(other Int64) bool {
	return I == other
}

// SerializedSize - Always 8 bytes
func (I Int64) SerializedSize() int {
	return codec.Uint64Length
}

// Serialize - Writes the number as 8 bytes little endian (two's complement)
func (I Int64) Serialize(buf []byte) (n int, err error) {
	return codec.PutUint64(buf, uint64(I))
}

// Deserialize - Reads 8 bytes little endian (two's complement)
func (I Int64) Deserialize(buf []byte) (v Int64, n int, err error) {
	u, n, err := codec.ReadUint64(buf)
	v = Int64(u)
	return
}
