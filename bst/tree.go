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

// Package bst implements an ordered map from single-byte keys to integer
// values as an unbalanced binary search tree. Two interchangeable
// strategies, Recursive and Iterative, satisfy the same Map contract.
// Balancing is explicit and on demand, see Balance.
package bst

import (
	"errors"
	"fmt"
	"strings"
)

// Map is the contract shared by both tree strategies.
type Map interface {
	// Init empties the tree without freeing anything. Calling it on a
	// populated tree orphans the old nodes; use Dispose for that.
	Init()
	Search(key byte) (int, bool)
	Insert(key byte, value int)
	Delete(key byte)
	Dispose()
	Preorder(items *Items)
	Inorder(items *Items)
	Postorder(items *Items)
	Root() *Node
	Len() int
	Empty() bool

	rootRef() **Node
}

type Strategy string

const (
	StrategyRecursive Strategy = "recursive"
	StrategyIterative Strategy = "iterative"
)

var ErrUnknownStrategy = errors.New("bst: unknown strategy")

// ParseStrategy maps a strategy name, case-insensitively, onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategyRecursive, StrategyIterative:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New builds an empty tree using the named strategy.
func New(s Strategy, opts ...Option) (Map, error) {
	switch s {
	case StrategyRecursive:
		return NewRecursive(opts...), nil
	case StrategyIterative:
		return NewIterative(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}

type Option func(*tree)

// WithAllocator routes node creation and release through a.
func WithAllocator(a Allocator) Option {
	return func(t *tree) {
		if a != nil {
			t.alloc = a
		}
	}
}

// tree holds the state both strategies share.
type tree struct {
	root  *Node
	alloc Allocator
	size  int
}

func newTree(opts []Option) tree {
	t := tree{alloc: heapAllocator{}}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func (t *tree) Init() {
	t.root = nil
	t.size = 0
}

func (t *tree) Root() *Node {
	return t.root
}

// Len reports the number of nodes reachable from the root.
func (t *tree) Len() int {
	return t.size
}

func (t *tree) Empty() bool {
	return t.root == nil
}

func (t *tree) rootRef() **Node {
	return &t.root
}

func (t *tree) newNode(key byte, value int) *Node {
	n := t.alloc.Alloc(key, value)
	if n != nil {
		t.size++
	}
	return n
}

func (t *tree) freeNode(n *Node) {
	t.alloc.Free(n)
	t.size--
}

// Order selects a traversal.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "pre", "in", "post" and their "order" / "-order"
// spellings.
func ParseOrder(name string) (Order, error) {
	base := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "order")
	switch strings.TrimSuffix(base, "-") {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("bst: unknown traversal order %q", name)
}

// Traverse collects the nodes of m in the requested order.
func Traverse(m Map, o Order) *Items {
	items := NewItems(m.Len())
	switch o {
	case PreOrder:
		m.Preorder(items)
	case PostOrder:
		m.Postorder(items)
	default:
		m.Inorder(items)
	}
	return items
}
