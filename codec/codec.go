package codec

import "encoding/binary"

// LengthPrefixLength - Number of bytes used to prefix variable length data with its length
const LengthPrefixLength int = 4

// Uint64Length - Number of bytes used by a fixed size 64 bit integer
const Uint64Length int = 8

// Value - Interface that any type stored as a value in the hash map has to implement.
// The zero value of the type acts as the default constructed instance that Deserialize is called on, so
// implementations must be value types (as in package keys). A pointer type is only valid if every method,
// Deserialize and SerializedSize included, accepts a nil receiver.
type Value[V any] interface {
	// SerializedSize - Returns the number of bytes Serialize will write
	SerializedSize() int

	// Serialize - Writes the binary representation to the start of buf.
	// It returns the number of bytes written, or a BufferTooShort error if buf can't hold them.
	Serialize(buf []byte) (n int, err error)

	// Deserialize - Reads a binary representation from the start of buf.
	// It returns the decoded instance and the number of bytes consumed, or a BufferTooShort error
	// if buf doesn't hold a complete representation.
	Deserialize(buf []byte) (v V, n int, err error)
}

// Key - Interface that any type used as a key in the hash map has to implement.
// Hash must be stable for equal keys, and Equal must compare the key contents.
type Key[K any] interface {
	Value[K]

	// Hash - Returns a stable 64 bit hash of the key
	Hash() uint64

	// Equal - Returns true if other holds the same key
	Equal(other K) bool
}

// PutBytes - Writes data prefixed with its length (uint32 little endian) to buf.
// It returns the number of bytes written.
func PutBytes(buf []byte, data []byte) (n int, err error) {
	needed := LengthPrefixLength + len(data)
	if len(buf) < needed {
		err = NewBufferTooShort(needed, len(buf))
		return
	}

	binary.LittleEndian.PutUint32(buf, uint32(len(data)))
	n = LengthPrefixLength + copy(buf[LengthPrefixLength:], data)

	return
}

// ReadBytes - Reads length prefixed data from buf. The returned slice is a copy and doesn't share
// memory with buf.
// It returns the data and the number of bytes consumed.
func ReadBytes(buf []byte) (data []byte, n int, err error) {
	if len(buf) < LengthPrefixLength {
		err = NewBufferTooShort(LengthPrefixLength, len(buf))
		return
	}

	length := int(binary.LittleEndian.Uint32(buf))
	needed := LengthPrefixLength + length
	if len(buf) < needed {
		err = NewBufferTooShort(needed, len(buf))
		return
	}

	data = make([]byte, length)
	_ = copy(data, buf[LengthPrefixLength:needed])
	n = needed

	return
}

// PutUint64 - Writes v as 8 bytes little endian to buf
func PutUint64(buf []byte, v uint64) (n int, err error) {
	if len(buf) < Uint64Length {
		err = NewBufferTooShort(Uint64Length, len(buf))
		return
	}

	binary.LittleEndian.PutUint64(buf, v)
	n = Uint64Length

	return
}

// ReadUint64 - Reads 8 bytes little endian from buf
func ReadUint64(buf []byte) (v uint64, n int, err error) {
	if len(buf) < Uint64Length {
		err = NewBufferTooShort(Uint64Length, len(buf))
		return
	}

	v = binary.LittleEndian.Uint64(buf)
	n = Uint64Length

	return
}
