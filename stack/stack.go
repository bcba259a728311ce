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

// Package stack provides the LIFO container used by the iterative tree
// traversals. A single generic type covers node references, boolean
// visit flags and tagged traversal frames.
package stack

// Stack is a last-in first-out container. The zero value is an empty,
// usable stack.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacityHint elements before
// it has to grow. Traversals pass the node count, which bounds the tree
// height.
func New[T any](capacityHint int) *Stack[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Stack[T]{items: make([]T, 0, capacityHint)}
}

// Init empties the stack, keeping its backing storage.
func (s *Stack[T]) Init() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. On an empty stack it returns
// the zero value and false.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero // drop the reference so popped nodes can be collected
	s.items = s.items[:last]
	return v, true
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
