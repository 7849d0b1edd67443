//go:build unit

package chain

import (
	"errors"
	"github.com/gostonefire/chainmap/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func buildChain(elements ...int) (head *Node[int]) {
	for i := len(elements) - 1; i >= 0; i-- {
		n := NewNode(elements[i])
		n.Next = head
		head = n
	}

	return
}

func TestLength(t *testing.T) {
	t.Run("counts nodes in chain", func(t *testing.T) {
		// Prepare
		head := buildChain(1, 2, 3)

		// Execute
		length := Length(head)

		// Check
		assert.Equal(t, int64(3), length, "three nodes in chain")
	})

	t.Run("nil head has length zero", func(t *testing.T) {
		// Execute
		length := Length[int](nil)

		// Check
		assert.Zero(t, length, "empty chain")
	})
}

func TestIterator(t *testing.T) {
	t.Run("iterates all nodes in order", func(t *testing.T) {
		// Prepare
		iter := NewIterator(buildChain(1, 2, 3))
		var got []int

		// Execute
		for iter.HasNext() {
			node, err := iter.Next()
			assert.NoError(t, err, "gets next node")
			got = append(got, node.Element)
		}

		// Check
		assert.Equal(t, []int{1, 2, 3}, got, "all elements in chain order")
	})

	t.Run("returns NoRecordFound past the end", func(t *testing.T) {
		// Prepare
		iter := NewIterator[int](nil)

		// Execute
		node, err := iter.Next()

		// Check
		assert.False(t, iter.HasNext(), "empty chain has no next")
		assert.Nil(t, node, "no node")
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "error is NoRecordFound")
	})
}
