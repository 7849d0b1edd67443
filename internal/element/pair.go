package element

import (
	"fmt"
	"github.com/gostonefire/chainmap/codec"
)

// Pair - A stored key-value element. Hashing and equality only consider the key, equality compares key
// contents and never identity.
type Pair[K codec.Key[K], V codec.Value[V]] struct {
	key   K
	value V
}

// NewPair - Returns a pointer to a new Pair holding key and value
func NewPair[K codec.Key[K], V codec.Value[V]](key K, value V) *Pair[K, V] {
	return &Pair[K, V]{key: key, value: value}
}

// NewProbe - Returns a pointer to a Pair only carrying key, used for lookups and removal.
// The value is the zero value of V and a probe is never stored.
func NewProbe[K codec.Key[K], V codec.Value[V]](key K) *Pair[K, V] {
	return &Pair[K, V]{key: key}
}

// Key - Returns the key
func (P *Pair[K, V]) Key() K {
	return P.key
}

// Value - Returns the value
func (P *Pair[K, V]) Value() V {
	return P.value
}

// Hash - Returns the hash of the key
func (P *Pair[K, V]) Hash() uint64 {
	return P.key.Hash()
}

// Equal - Returns true if other has an equal key, values are not compared
func (P *Pair[K, V]) Equal(other *Pair[K, V]) bool {
	return P.key.Equal(other.key)
}

// SerializedSize - Returns the number of bytes Serialize will write
func (P *Pair[K, V]) SerializedSize() int {
	return P.key.SerializedSize() + P.value.SerializedSize()
}

// Serialize - Writes the serialized key immediately followed by the serialized value to the start of buf.
// There is no length prefix or type tag for the pair itself.
// It returns:
//   - n is the total number of bytes written
//   - err is of type codec.BufferTooShort if buf can't hold the pair
func (P *Pair[K, V]) Serialize(buf []byte) (n int, err error) {
	if needed := P.SerializedSize(); len(buf) < needed {
		err = codec.NewBufferTooShort(needed, len(buf))
		return
	}

	kn, err := P.key.Serialize(buf)
	if err != nil {
		err = fmt.Errorf("error while serializing key: %w", err)
		return
	}
	vn, err := P.value.Serialize(buf[kn:])
	if err != nil {
		err = fmt.Errorf("error while serializing value: %w", err)
		return
	}
	n = kn + vn

	return
}

// Deserialize - Reads a key followed by a value from the start of buf, both decoded from fresh zero values
// (see codec.Value on why K and V must tolerate being zero).
// The pair is only replaced if both key and value decode, on error it keeps its previous contents.
// It returns:
//   - n is the total number of bytes consumed
//   - err is whatever error the key or value type reported, typically codec.BufferTooShort
func (P *Pair[K, V]) Deserialize(buf []byte) (n int, err error) {
	var key K
	var value V

	key, kn, err := key.Deserialize(buf)
	if err != nil {
		err = fmt.Errorf("error while deserializing key: %w", err)
		return
	}
	value, vn, err := value.Deserialize(buf[kn:])
	if err != nil {
		err = fmt.Errorf("error while deserializing value: %w", err)
		return
	}

	P.key = key
	P.value = value
	n = kn + vn

	return
}
