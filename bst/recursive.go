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

// Recursive implements Map with recursive descent for every operation.
type Recursive struct {
	tree
}

func NewRecursive(opts ...Option) *Recursive {
	return &Recursive{tree: newTree(opts)}
}

func (t *Recursive) Search(key byte) (int, bool) {
	return searchRecursive(t.root, key)
}

func searchRecursive(node *Node, key byte) (int, bool) {
	if node == nil {
		return 0, false
	}

	switch {
	case key < node.Key:
		return searchRecursive(node.left, key)
	case key > node.Key:
		return searchRecursive(node.right, key)
	default:
		return node.Value, true
	}
}

func (t *Recursive) Insert(key byte, value int) {
	t.insertRecursive(&t.root, key, value)
}

func (t *Recursive) insertRecursive(link **Node, key byte, value int) {
	node := *link
	if node == nil {
		// stays nil when the allocator refuses
		*link = t.newNode(key, value)
		return
	}

	switch {
	case key < node.Key:
		t.insertRecursive(&node.left, key, value)
	case key > node.Key:
		t.insertRecursive(&node.right, key, value)
	default:
		node.Value = value
	}
}

func (t *Recursive) Delete(key byte) {
	t.deleteRecursive(&t.root, key)
}

func (t *Recursive) deleteRecursive(link **Node, key byte) {
	node := *link
	if node == nil {
		return // Key not found
	}

	switch {
	case key < node.Key:
		t.deleteRecursive(&node.left, key)
	case key > node.Key:
		t.deleteRecursive(&node.right, key)
	case node.left == nil:
		// Leaf or right child only
		*link = node.right
		t.freeNode(node)
	case node.right == nil:
		*link = node.left
		t.freeNode(node)
	default:
		t.replaceByRightmost(node, &node.left)
	}
}

// replaceByRightmost moves the key and value of the rightmost node below
// *link into target and frees that node, handing its left subtree to the
// link that pointed at it. *link must not be nil.
func (t *Recursive) replaceByRightmost(target *Node, link **Node) {
	node := *link
	if node.right != nil {
		t.replaceByRightmost(target, &node.right)
		return
	}

	target.Key = node.Key
	target.Value = node.Value
	*link = node.left
	t.freeNode(node)
}

func (t *Recursive) Dispose() {
	t.disposeRecursive(&t.root)
}

func (t *Recursive) disposeRecursive(link **Node) {
	node := *link
	if node == nil {
		return
	}
	t.disposeRecursive(&node.left)
	t.disposeRecursive(&node.right)
	*link = nil
	t.freeNode(node)
}

func (t *Recursive) Preorder(items *Items) {
	preorderRecursive(t.root, items)
}

func preorderRecursive(node *Node, items *Items) {
	if node == nil {
		return
	}
	items.Add(node)
	preorderRecursive(node.left, items)
	preorderRecursive(node.right, items)
}

func (t *Recursive) Inorder(items *Items) {
	inorderRecursive(t.root, items)
}

func inorderRecursive(node *Node, items *Items) {
	if node == nil {
		return
	}
	inorderRecursive(node.left, items)
	items.Add(node)
	inorderRecursive(node.right, items)
}

func (t *Recursive) Postorder(items *Items) {
	postorderRecursive(t.root, items)
}

func postorderRecursive(node *Node, items *Items) {
	if node == nil {
		return
	}
	postorderRecursive(node.left, items)
	postorderRecursive(node.right, items)
	items.Add(node)
}
