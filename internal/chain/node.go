package chain

// Node - One cell in a bucket chain, holding a stored element and the next cell in the same bucket.
// The last node in a chain has a nil Next.
type Node[E any] struct {
	Element E
	Next    *Node[E]
}

// NewNode - Returns a pointer to a new unlinked Node holding element
func NewNode[E any](element E) *Node[E] {
	return &Node[E]{Element: element}
}

// Length - Returns the number of nodes in the chain starting at head, zero for a nil head
func Length[E any](head *Node[E]) (length int64) {
	iter := NewIterator(head)
	for iter.HasNext() {
		_, _ = iter.Next()
		length++
	}

	return
}
