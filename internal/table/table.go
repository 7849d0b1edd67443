package table

import (
	"fmt"
	"github.com/gostonefire/chainmap/crt"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/chain"
	"github.com/gostonefire/chainmap/internal/conf"
)

// Element - Capabilities an element needs to be stored in a Table.
// Equal must agree with Hash, i.e. equal elements must produce the same hash.
type Element[E any] interface {
	Hash() uint64
	Equal(other E) bool
}

// Table - Fixed size array of bucket chains. The chain at the bucket number of an element's hash is
// the only chain that may contain that element.
type Table[E Element[E]] struct {
	buckets           []*chain.Node[E]
	size              int64
	bucketAlgorithm   hashfunc.BucketAlgorithm
	internalAlgorithm bool
}

// NewTable - Returns a pointer to a new Table with all buckets empty.
//   - bucketCount is the requested number of buckets, it must be higher than 0 (zero) and the resulting table size at most conf.MaxNumberOfBuckets
//   - bucketAlgorithm is an optional custom bucket selection algorithm, nil gives hash modulo bucketCount
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable[E Element[E]](bucketCount int64, bucketAlgorithm hashfunc.BucketAlgorithm) (table *Table[E], err error) {
	if bucketCount <= 0 {
		err = fmt.Errorf("bucket count must be a positive value higher than 0 (zero)")
		return
	}
	if bucketCount > conf.MaxNumberOfBuckets {
		err = fmt.Errorf("bucket count %d exceeds max %d", bucketCount, conf.MaxNumberOfBuckets)
		return
	}

	// If no BucketAlgorithm was given then use the default internal
	var internalAlg bool
	if bucketAlgorithm == nil {
		bucketAlgorithm = hashfunc.NewModuloAlgorithm(bucketCount)
		internalAlg = true
	} else {
		bucketAlgorithm.SetTableSize(bucketCount)
	}

	numberOfBuckets := bucketAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 || numberOfBuckets > conf.MaxNumberOfBuckets {
		err = fmt.Errorf("bucket algorithm reports a table size of %d, it must be between 1 and %d", numberOfBuckets, conf.MaxNumberOfBuckets)
		return
	}

	table = &Table[E]{
		buckets:           make([]*chain.Node[E], numberOfBuckets),
		bucketAlgorithm:   bucketAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Len - Returns the number of stored elements
func (T *Table[E]) Len() int64 {
	return T.size
}

// BucketCount - Returns the number of buckets in the table
func (T *Table[E]) BucketCount() int64 {
	return int64(len(T.buckets))
}

// InternalAlgorithm - Returns true if the table uses the internal bucket algorithm
func (T *Table[E]) InternalAlgorithm() bool {
	return T.internalAlgorithm
}

// BucketAlgorithm - Returns the bucket algorithm in use
func (T *Table[E]) BucketAlgorithm() hashfunc.BucketAlgorithm {
	return T.bucketAlgorithm
}

// BucketNo - Returns the bucket number that item belongs to.
// It panics with a crt.BucketOutOfRange error if the bucket algorithm returns a number outside the table.
func (T *Table[E]) BucketNo(item E) int64 {
	bucketNo := T.bucketAlgorithm.BucketNumber(item.Hash())
	if bucketNo < 0 || bucketNo >= int64(len(T.buckets)) {
		panic(crt.NewBucketOutOfRange(bucketNo, int64(len(T.buckets))))
	}

	return bucketNo
}

// Find - Returns the stored element equal to probe, ok is false if there is none
func (T *Table[E]) Find(probe E) (element E, ok bool) {
	for n := T.buckets[T.BucketNo(probe)]; n != nil; n = n.Next {
		if n.Element.Equal(probe) {
			return n.Element, true
		}
	}

	return
}

// Add - Inserts item unless an equal element is already stored, in which case the stored element is kept.
// It returns true if item was inserted.
func (T *Table[E]) Add(item E) bool {
	bucketNo := T.BucketNo(item)
	head := T.buckets[bucketNo]
	if head == nil {
		T.buckets[bucketNo] = chain.NewNode(item)
		T.size++
		return true
	}

	for n := head; ; n = n.Next {
		if n.Element.Equal(item) {
			return false
		}
		if n.Next == nil {
			n.Next = chain.NewNode(item)
			T.size++
			return true
		}
	}
}

// Upsert - Replaces the stored element equal to item, or appends item at the end of its bucket chain.
// The walk stops at the first equal element since an element appears at most once in a chain.
// It returns true if item was inserted and false if an existing element was replaced.
func (T *Table[E]) Upsert(item E) (inserted bool) {
	bucketNo := T.BucketNo(item)
	n := T.buckets[bucketNo]
	if n == nil {
		T.buckets[bucketNo] = chain.NewNode(item)
		T.size++
		return true
	}

	for {
		if n.Element.Equal(item) {
			n.Element = item
			return false
		}
		if n.Next == nil {
			n.Next = chain.NewNode(item)
			break
		}
		n = n.Next
	}

	T.size++
	return true
}

// Remove - Unlinks the stored element equal to probe from its chain.
// It returns false if there was no such element.
func (T *Table[E]) Remove(probe E) bool {
	bucketNo := T.BucketNo(probe)

	var prev *chain.Node[E]
	for n := T.buckets[bucketNo]; n != nil; prev, n = n, n.Next {
		if !n.Element.Equal(probe) {
			continue
		}

		if prev == nil {
			T.buckets[bucketNo] = n.Next
		} else {
			prev.Next = n.Next
		}
		n.Next = nil
		T.size--

		return true
	}

	return false
}

// Bucket - Returns an iterator over the chain in the given bucket
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to BucketNo
func (T *Table[E]) Bucket(bucketNo int64) (iterator *chain.Iterator[E], err error) {
	if bucketNo < 0 || bucketNo >= int64(len(T.buckets)) {
		err = crt.NewBucketOutOfRange(bucketNo, int64(len(T.buckets)))
		return
	}

	iterator = chain.NewIterator(T.buckets[bucketNo])

	return
}

// ChainLength - Returns the number of elements in the given bucket, zero for a bucket number outside the table
func (T *Table[E]) ChainLength(bucketNo int64) int64 {
	if bucketNo < 0 || bucketNo >= int64(len(T.buckets)) {
		return 0
	}

	return chain.Length(T.buckets[bucketNo])
}

// Range - Calls fn for every stored element, bucket by bucket in chain order, until fn returns false
func (T *Table[E]) Range(fn func(element E) bool) {
	var iter *chain.Iterator[E]
	var node *chain.Node[E]
	for i := range T.buckets {
		iter = chain.NewIterator(T.buckets[i])
		for iter.HasNext() {
			node, _ = iter.Next()
			if !fn(node.Element) {
				return
			}
		}
	}
}

// Clear - Drops every chain, leaving all buckets empty
func (T *Table[E]) Clear() {
	for i := range T.buckets {
		T.buckets[i] = nil
	}
	T.size = 0
}
