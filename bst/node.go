// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bst

// Node is a single tree element. A node owns its two children outright:
// every node is reachable through exactly one link, either the tree root
// or a child slot of its parent.
type Node struct {
	Key   byte
	Value int
	left  *Node
	right *Node
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

// Allocator hands out and reclaims nodes. Alloc may return nil to signal
// that no node could be created; the insert that asked for it is then
// dropped without touching the tree.
type Allocator interface {
	Alloc(key byte, value int) *Node
	Free(n *Node)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(key byte, value int) *Node {
	return &Node{Key: key, Value: value}
}

// Free clears the node so a stale reference cannot reach the rest of the
// tree.
func (heapAllocator) Free(n *Node) {
	*n = Node{}
}

// Pair is a key/value snapshot of a node.
type Pair struct {
	Key   byte
	Value int
}

// Items collects node references in the order a traversal visits them.
// It never copies or owns the nodes.
type Items struct {
	nodes []*Node
}

// NewItems returns an empty buffer sized for capacity nodes.
func NewItems(capacity int) *Items {
	if capacity < 0 {
		capacity = 0
	}
	return &Items{nodes: make([]*Node, 0, capacity)}
}

func (it *Items) Add(n *Node) {
	it.nodes = append(it.nodes, n)
}

func (it *Items) Nodes() []*Node {
	return it.nodes
}

func (it *Items) Len() int {
	return len(it.nodes)
}

// Keys returns the collected keys in visit order.
func (it *Items) Keys() []byte {
	keys := make([]byte, 0, len(it.nodes))
	for _, n := range it.nodes {
		keys = append(keys, n.Key)
	}
	return keys
}

// Pairs returns the collected key/value pairs in visit order.
func (it *Items) Pairs() []Pair {
	pairs := make([]Pair, 0, len(it.nodes))
	for _, n := range it.nodes {
		pairs = append(pairs, Pair{Key: n.Key, Value: n.Value})
	}
	return pairs
}
