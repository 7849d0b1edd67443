package chainmap

import (
	"github.com/gostonefire/chainmap/codec"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/element"
	"github.com/gostonefire/chainmap/internal/table"
	"go.uber.org/zap"
)

// Conf - Is a struct to be passed in the call to NewHashMap and contains configuration for the hash map.
//   - BucketCount is the number of buckets to allocate, it is fixed for the lifetime of the hash map
//   - BucketAlgorithm is an optional custom bucket selection algorithm following the hashfunc.BucketAlgorithm interface, nil gives hash modulo BucketCount
//   - Logger is an optional zap logger, nil disables logging
type Conf struct {
	BucketCount     int64
	BucketAlgorithm hashfunc.BucketAlgorithm
	Logger          *zap.Logger
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the total number of buckets in the hash map
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	NumberOfBuckets    int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// HashMap - A key-value hash map over a fixed number of buckets, resolving collisions by separate chaining.
// It is not safe for concurrent use; callers must serialize access.
type HashMap[K codec.Key[K], V codec.Value[V]] struct {
	table  *table.Table[*element.Pair[K, V]]
	logger *zap.Logger
}

// NewHashMap - Returns a new hash map with all buckets empty.
//   - conf is a Conf struct where BucketCount must be a positive value higher than 0 (zero)
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[K codec.Key[K], V codec.Value[V]](conf Conf) (hashMap *HashMap[K, V], err error) {
	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tbl, err := table.NewTable[*element.Pair[K, V]](conf.BucketCount, conf.BucketAlgorithm)
	if err != nil {
		return
	}

	hashMap = &HashMap[K, V]{
		table:  tbl,
		logger: logger,
	}

	logger.Debug("created hash map",
		zap.Int64("requestedBuckets", conf.BucketCount),
		zap.Int64("buckets", tbl.BucketCount()),
		zap.Bool("internalAlgorithm", tbl.InternalAlgorithm()),
	)

	return
}

// Len - Returns the number of stored records
func (H *HashMap[K, V]) Len() int64 {
	return H.table.Len()
}

// BucketCount - Returns the number of buckets
func (H *HashMap[K, V]) BucketCount() int64 {
	return H.table.BucketCount()
}

// GetBucketNo - Returns which bucket number that the given key results in
func (H *HashMap[K, V]) GetBucketNo(key K) int64 {
	return H.table.BucketNo(element.NewProbe[K, V](key))
}
