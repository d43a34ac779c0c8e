package pixmat

import (
	"errors"

	"go.uber.org/zap"
)

// Errors reported by Cache operations.
var (
	ErrPoolExhausted = errors.New("pixmat: pool exhausted")
	ErrForeignNode   = errors.New("pixmat: node does not belong to this pool")
	ErrDoubleReturn  = errors.New("pixmat: node already in pool")
)

// PoolNode holds one pre-allocated Buffer inside a Cache's free list.
// A node is either free (reachable from the cache head) or borrowed
// (held by a caller); it is never both.
type PoolNode struct {
	buf      *Buffer
	size     int
	next     *PoolNode
	owner    *Cache
	borrowed bool
}

// Buffer returns the node's Buffer.
func (n *PoolNode) Buffer() *Buffer { return n.buf }

// Size returns the capacity of the node's Buffer in bytes.
func (n *PoolNode) Size() int { return n.size }

// Cache is a singly-linked free list of Buffer-holding nodes. It exists
// to keep a hot path (per-frame conversion, typically) free of Buffer
// allocation: callers borrow a node with GetBuffer, use its Buffer, and
// hand it back with PutBuffer.
//
// A Cache is not safe for concurrent use; callers running GetBuffer and
// PutBuffer from multiple goroutines must synchronize externally.
type Cache struct {
	head *PoolNode
	tail *PoolNode
	free int
}

// NewCache builds a Cache of exactly capacity nodes, each holding a
// Buffer of at least sizeBytes bytes.
func NewCache(capacity, sizeBytes int) *Cache {
	c := &Cache{}
	for i := 0; i < capacity; i++ {
		buf := NewBuffer(sizeBytes)
		n := &PoolNode{buf: buf, size: buf.Size(), owner: c}
		if c.tail == nil {
			c.head, c.tail = n, n
		} else {
			c.tail.next = n
			c.tail = n
		}
		c.free++
	}
	return c
}

// Free returns the number of nodes currently available.
func (c *Cache) Free() int { return c.free }

// GetBuffer detaches and returns the head node. If sizeBytes exceeds
// the node's current Buffer capacity, the Buffer is replaced with a
// larger one first; node Buffers grow but never shrink. Fails with
// ErrPoolExhausted when every node is borrowed.
func (c *Cache) GetBuffer(sizeBytes int) (*PoolNode, error) {
	n := c.head
	if n == nil {
		return nil, ErrPoolExhausted
	}
	c.head = n.next
	if c.head == nil {
		c.tail = nil
	}
	n.next = nil
	n.borrowed = true
	c.free--
	if sizeBytes > n.size {
		Logger().Debug("growing pool node",
			zap.Int("from", n.size), zap.Int("to", align8(sizeBytes)))
		n.buf = NewBuffer(sizeBytes)
		n.size = n.buf.Size()
	}
	return n, nil
}

// PutBuffer returns a borrowed node to the pool, appending it at the
// tail. Fails if the node was created by a different Cache or is
// already in the pool; neither case touches the chain.
func (c *Cache) PutBuffer(n *PoolNode) error {
	if n == nil || n.owner != c {
		return ErrForeignNode
	}
	if !n.borrowed {
		return ErrDoubleReturn
	}
	n.borrowed = false
	n.next = nil
	if c.tail == nil {
		c.head, c.tail = n, n
	} else {
		c.tail.next = n
		c.tail = n
	}
	c.free++
	return nil
}
