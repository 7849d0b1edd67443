package chain

import (
	"github.com/gostonefire/chainmap/crt"
)

// Iterator - Is used to iterate over the nodes of a chain one by one.
type Iterator[E any] struct {
	node *Node[E]
}

// NewIterator - Returns a pointer to a new Iterator starting at head
func NewIterator[E any](head *Node[E]) *Iterator[E] {

	return &Iterator[E]{
		node: head,
	}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (I *Iterator[E]) HasNext() bool {
	return I.node != nil
}

// Next - Returns the next node.
// It returns:
//   - node is the next node in the chain.
//   - err is of type crt.NoRecordFound if there are no more nodes when calling this function.
func (I *Iterator[E]) Next() (node *Node[E], err error) {
	if I.node == nil {
		err = crt.NoRecordFound{}
		return
	}

	node = I.node
	I.node = node.Next

	return
}
