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

import "github.com/cybrota/assoc/stack"

// stackHint is the initial stack capacity for the iterative walks. The
// stacks never hold more than a tree height's worth of entries (plus
// pending siblings during Dispose), so they rarely need to grow.
const stackHint = 32

// Iterative implements Map without recursion. Traversals and Dispose keep
// their pending work on an explicit stack.
type Iterative struct {
	tree
}

func NewIterative(opts ...Option) *Iterative {
	return &Iterative{tree: newTree(opts)}
}

func (t *Iterative) Search(key byte) (int, bool) {
	node := t.root
	for node != nil {
		switch {
		case key < node.Key:
			node = node.left
		case key > node.Key:
			node = node.right
		default:
			return node.Value, true
		}
	}
	return 0, false
}

func (t *Iterative) Insert(key byte, value int) {
	link := &t.root
	for *link != nil {
		node := *link
		switch {
		case key < node.Key:
			link = &node.left
		case key > node.Key:
			link = &node.right
		default:
			node.Value = value
			return
		}
	}
	*link = t.newNode(key, value)
}

func (t *Iterative) Delete(key byte) {
	link := &t.root
	for *link != nil && (*link).Key != key {
		if key < (*link).Key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}

	node := *link
	if node == nil {
		return
	}

	switch {
	case node.left == nil:
		*link = node.right
		t.freeNode(node)
	case node.right == nil:
		*link = node.left
		t.freeNode(node)
	default:
		t.replaceByRightmost(node, &node.left)
	}
}

// replaceByRightmost is the loop form of Recursive.replaceByRightmost.
func (t *Iterative) replaceByRightmost(target *Node, link **Node) {
	for (*link).right != nil {
		link = &(*link).right
	}

	node := *link
	target.Key = node.Key
	target.Value = node.Value
	*link = node.left
	t.freeNode(node)
}

func (t *Iterative) Dispose() {
	if t.root == nil {
		return
	}

	work := stack.New[*Node](stackHint)
	work.Push(t.root)
	for !work.Empty() {
		node, _ := work.Pop()
		if node.left != nil {
			work.Push(node.left)
		}
		if node.right != nil {
			work.Push(node.right)
		}
		t.freeNode(node)
	}
	t.root = nil
}

// leftmostPreorder walks the left spine from node, emitting every node on
// the way and remembering it so its right subtree is visited later.
func leftmostPreorder(node *Node, toVisit *stack.Stack[*Node], items *Items) {
	for ; node != nil; node = node.left {
		items.Add(node)
		toVisit.Push(node)
	}
}

func (t *Iterative) Preorder(items *Items) {
	toVisit := stack.New[*Node](stackHint)
	leftmostPreorder(t.root, toVisit, items)
	for !toVisit.Empty() {
		node, _ := toVisit.Pop()
		leftmostPreorder(node.right, toVisit, items)
	}
}

func leftmostInorder(node *Node, toVisit *stack.Stack[*Node]) {
	for ; node != nil; node = node.left {
		toVisit.Push(node)
	}
}

func (t *Iterative) Inorder(items *Items) {
	toVisit := stack.New[*Node](stackHint)
	leftmostInorder(t.root, toVisit)
	for !toVisit.Empty() {
		node, _ := toVisit.Pop()
		items.Add(node)
		leftmostInorder(node.right, toVisit)
	}
}

// frame is a postorder stack entry. A node is emitted on the visit after
// its right subtree has been walked.
type frame struct {
	node         *Node
	rightVisited bool
}

func leftmostPostorder(node *Node, toVisit *stack.Stack[frame]) {
	for ; node != nil; node = node.left {
		toVisit.Push(frame{node: node})
	}
}

func (t *Iterative) Postorder(items *Items) {
	toVisit := stack.New[frame](stackHint)
	leftmostPostorder(t.root, toVisit)
	for !toVisit.Empty() {
		f, _ := toVisit.Pop()
		if f.rightVisited {
			items.Add(f.node)
			continue
		}
		f.rightVisited = true
		toVisit.Push(f)
		leftmostPostorder(f.node.right, toVisit)
	}
}
