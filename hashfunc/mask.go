package hashfunc

import (
	"github.com/gostonefire/chainmap/internal/utils"
)

// MaskAlgorithm - Bucket selection algorithm applying bucket = hash & (actualTableSize - 1) to get the bucket number,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
type MaskAlgorithm struct {
	tableSize int64
}

// NewMaskAlgorithm - Returns a pointer to a new MaskAlgorithm instance
func NewMaskAlgorithm(tableSize int64) *MaskAlgorithm {
	ha := &MaskAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the bucket algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the map will address
func (O *MaskAlgorithm) SetTableSize(tableSize int64) {
	O.tableSize = utils.RoundUp2(tableSize)
}

// GetTableSize - Returns the table size the algorithm is supporting
func (O *MaskAlgorithm) GetTableSize() int64 {
	return O.tableSize
}

// BucketNumber - Given a hash value it generates a bucket number between 0 and table size - 1
func (O *MaskAlgorithm) BucketNumber(hash uint64) int64 {
	return int64(hash & uint64(O.tableSize-1))
}
