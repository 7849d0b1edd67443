package chainmap

import (
	"github.com/gostonefire/chainmap/internal/chain"
	"github.com/gostonefire/chainmap/internal/element"
)

// Get - Gets the value stored for key.
//   - key is the identifier of a record
//
// It returns:
//   - value is a copy of the stored value if found, otherwise the zero value of V
//   - ok is false if no record was found, which is a normal outcome and not an error
func (H *HashMap[K, V]) Get(key K) (value V, ok bool) {
	pair, ok := H.table.Find(element.NewProbe[K, V](key))
	if !ok {
		return
	}

	value = pair.Value()

	return
}

// Contains - Returns true if a record is stored for key
func (H *HashMap[K, V]) Contains(key K) bool {
	_, ok := H.table.Find(element.NewProbe[K, V](key))
	return ok
}

// Put - Updates an existing record with a new value or adds it if no existing is found with same key.
// The stored record is replaced as a whole, the previous key and value are released.
//   - key is the identifier of a record
//   - value is the value to store, the hash map takes ownership of it
//
// It returns:
//   - inserted is true if a new record was added and false if an existing record was updated
func (H *HashMap[K, V]) Put(key K, value V) (inserted bool) {
	return H.table.Upsert(element.NewPair(key, value))
}

// Remove - Removes the record corresponding to key from the hash map.
//   - key is the identifier of a record
//
// It returns:
//   - removed is false if no record was found
func (H *HashMap[K, V]) Remove(key K) (removed bool) {
	return H.table.Remove(element.NewProbe[K, V](key))
}

// Range - Calls fn for every record until fn returns false.
// Records are visited bucket by bucket, no particular order should be relied upon.
func (H *HashMap[K, V]) Range(fn func(key K, value V) bool) {
	H.table.Range(func(pair *element.Pair[K, V]) bool {
		return fn(pair.Key(), pair.Value())
	})
}

// RangeBucket - Calls fn for every record in the given bucket, in chain order, until fn returns false.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - err is of type crt.BucketOutOfRange if bucketNo is outside the hash map
func (H *HashMap[K, V]) RangeBucket(bucketNo int64, fn func(key K, value V) bool) (err error) {
	iter, err := H.table.Bucket(bucketNo)
	if err != nil {
		return
	}

	var node *chain.Node[*element.Pair[K, V]]
	for iter.HasNext() {
		node, err = iter.Next()
		if err != nil {
			return
		}
		if !fn(node.Element.Key(), node.Element.Value()) {
			return
		}
	}

	return
}

// Clear - Removes every record, the number of buckets stays the same
func (H *HashMap[K, V]) Clear() {
	H.table.Clear()
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// The HashMapStat.BucketDistribution slice has one entry per bucket and can be memory heavy for big hash maps.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	var hms HashMapStat
	var chainLength int64

	hms.NumberOfBuckets = H.table.BucketCount()
	if includeDistribution {
		hms.BucketDistribution = make([]int64, hms.NumberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < hms.NumberOfBuckets; i++ {
		chainLength = H.table.ChainLength(i)
		if chainLength == 0 {
			continue
		}

		hms.Records += chainLength
		hms.UsedBuckets++
		if chainLength > hms.LongestChain {
			hms.LongestChain = chainLength
		}
		if includeDistribution {
			hms.BucketDistribution[i] = chainLength
		}
	}

	hashMapStat = &hms
	return
}
