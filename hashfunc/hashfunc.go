package hashfunc

// BucketAlgorithm - Interface that permits an implementation using the HashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type BucketAlgorithm interface {
	// SetTableSize - Sets the table size for the bucket algorithm.
	// It is called both when creating a new hash map and when loading an existing one. Hence, if a custom
	// bucket algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the number of buckets that is/was supplied when creating the hash map.
	//   - tableSize is the number of buckets requested
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the implemented bucket algorithm is supporting
	// Some algorithms round the requested size up (to nearest 2 to the power of x for instance), and if such operations
	// are built in the implementation of this interface it must be covered in GetTableSize since that is
	// the number of buckets that will be allocated.
	GetTableSize() int64

	// BucketNumber - Given the 64 bit hash of a key it returns a bucket number between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) is considered a programming error.
	BucketNumber(hash uint64) int64
}
