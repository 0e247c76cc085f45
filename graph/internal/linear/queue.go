// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linear implements simple linear data structures.
package linear

import "github.com/jemjive/skyline/graph"

// NodeQueue is a FIFO queue of graph.Node.
type NodeQueue struct {
	head int
	data []graph.Node
}

// Len returns the number of nodes in the queue.
func (q *NodeQueue) Len() int { return len(q.data) - q.head }

// Enqueue adds a node to the back of the queue.
func (q *NodeQueue) Enqueue(n graph.Node) {
	if len(q.data) == cap(q.data) && q.head > 0 {
		l := q.Len()
		copy(q.data, q.data[q.head:])
		q.data = q.data[:l]
		q.head = 0
	}
	q.data = append(q.data, n)
}

// Dequeue returns the node at the front of the queue and removes it.
func (q *NodeQueue) Dequeue() graph.Node {
	if q.Len() == 0 {
		panic("linear: empty queue")
	}

	var n graph.Node
	n, q.data[q.head] = q.data[q.head], nil
	q.head++

	if q.Len() == 0 {
		q.head = 0
		q.data = q.data[:0]
	}

	return n
}
