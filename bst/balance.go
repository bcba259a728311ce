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

// Balance rebuilds m into a height-balanced tree holding the same pairs.
// The nodes are collected in key order with m's own in-order traversal and
// relinked around successive midpoints; no node is allocated or copied.
func Balance(m Map) {
	root := m.rootRef()

	items := NewItems(Count(*root))
	m.Inorder(items)

	*root = buildFromSorted(items.Nodes(), 0, items.Len()-1)
}

// buildFromSorted links nodes[start..end] into a balanced subtree and
// returns its root.
func buildFromSorted(nodes []*Node, start, end int) *Node {
	if start > end {
		return nil
	}

	mid := (start + end) / 2
	root := nodes[mid]
	root.left = buildFromSorted(nodes, start, mid-1)
	root.right = buildFromSorted(nodes, mid+1, end)

	return root
}
