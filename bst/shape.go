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

// Count returns the number of nodes in the subtree rooted at node.
func Count(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + Count(node.left) + Count(node.right)
}

// Height returns the number of nodes on the longest root-to-leaf path;
// the empty tree has height 0.
func Height(node *Node) int {
	if node == nil {
		return 0
	}
	return max(Height(node.left), Height(node.right)) + 1
}

// IsBalanced reports whether the subtree heights of every node differ by
// at most one.
func IsBalanced(node *Node) bool {
	return balancedHeight(node) >= 0
}

// balancedHeight returns the height of node, or -1 as soon as an
// unbalanced subtree is found.
func balancedHeight(node *Node) int {
	if node == nil {
		return 0
	}
	left := balancedHeight(node.left)
	if left < 0 {
		return -1
	}
	right := balancedHeight(node.right)
	if right < 0 {
		return -1
	}
	if left-right > 1 || right-left > 1 {
		return -1
	}
	return max(left, right) + 1
}

// IsOrdered reports whether every left subtree holds only smaller keys and
// every right subtree only larger ones.
func IsOrdered(node *Node) bool {
	return orderedWithin(node, -1, 256)
}

func orderedWithin(node *Node, low, high int) bool {
	if node == nil {
		return true
	}
	k := int(node.Key)
	if k <= low || k >= high {
		return false
	}
	return orderedWithin(node.left, low, k) && orderedWithin(node.right, k, high)
}
