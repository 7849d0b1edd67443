package hashfunc

// ModuloAlgorithm - The default bucket selection algorithm. It applies bucket = hash % tableSize, so the
// number of buckets is exactly the requested table size.
type ModuloAlgorithm struct {
	tableSize int64
}

// NewModuloAlgorithm - Returns a pointer to a new ModuloAlgorithm instance
func NewModuloAlgorithm(tableSize int64) *ModuloAlgorithm {
	ma := &ModuloAlgorithm{}
	ma.SetTableSize(tableSize)
	return ma
}

// SetTableSize - Sets the table size for the bucket algorithm.
//   - tableSize is the number of buckets the map will address
func (M *ModuloAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// GetTableSize - Returns the table size the algorithm is supporting
func (M *ModuloAlgorithm) GetTableSize() int64 {
	return M.tableSize
}

// BucketNumber - Given a hash value it generates a bucket number between 0 and table size - 1
func (M *ModuloAlgorithm) BucketNumber(hash uint64) int64 {
	return int64(hash % uint64(M.tableSize))
}
