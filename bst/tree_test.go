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

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategies lists every Map implementation; the shared tests below run
// once per entry.
var strategies = []struct {
	Name string
	New  func(opts ...Option) Map
}{
	{Name: "recursive", New: func(opts ...Option) Map { return NewRecursive(opts...) }},
	{Name: "iterative", New: func(opts ...Option) Map { return NewIterative(opts...) }},
}

// countingAllocator tracks live nodes so tests can spot leaks and double
// frees. Freed nodes stay referenced, so their addresses are never reused.
type countingAllocator struct {
	live        int
	allocs      int
	frees       int
	doubleFrees int
	freed       map[*Node]bool
	fail        bool
}

func newCountingAllocator() *countingAllocator {
	return &countingAllocator{freed: make(map[*Node]bool)}
}

func (a *countingAllocator) Alloc(key byte, value int) *Node {
	if a.fail {
		return nil
	}
	a.allocs++
	a.live++
	return &Node{Key: key, Value: value}
}

func (a *countingAllocator) Free(n *Node) {
	if a.freed[n] {
		a.doubleFrees++
		return
	}
	a.freed[n] = true
	a.frees++
	a.live--
	*n = Node{}
}

func insertKeys(m Map, keys []byte) {
	for _, k := range keys {
		m.Insert(k, int(k))
	}
}

func inorderKeys(m Map) []byte {
	return Traverse(m, InOrder).Keys()
}

type TreeTestCase struct {
	Name          string
	InitialKeys   []byte
	KeysToInsert  []byte
	KeysToDelete  []byte
	ExpectedOrder []byte // In-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []TreeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []byte("abc"),
			ExpectedOrder: []byte("abc"),
		},
		{
			Name:          "Unordered Insertion",
			KeysToInsert:  []byte("dbfaceg"),
			ExpectedOrder: []byte("abcdefg"),
		},
		{
			Name:          "Duplicate Keys",
			KeysToInsert:  []byte("bbaab"),
			ExpectedOrder: []byte("ab"),
		},
		{
			Name:          "Delete Leaf",
			InitialKeys:   []byte("bac"),
			KeysToDelete:  []byte("a"),
			ExpectedOrder: []byte("bc"),
		},
		{
			Name:          "Delete Node With One Child",
			InitialKeys:   []byte("dbfa"),
			KeysToDelete:  []byte("b"),
			ExpectedOrder: []byte("adf"),
		},
		{
			Name:          "Delete Root With Only Right Child",
			InitialKeys:   []byte("abc"),
			KeysToDelete:  []byte("a"),
			ExpectedOrder: []byte("bc"),
		},
		{
			Name:          "Delete Node With Two Children",
			InitialKeys:   []byte("dbfaceg"),
			KeysToDelete:  []byte("bf"),
			ExpectedOrder: []byte("acdeg"),
		},
		{
			Name:          "Delete Absent Key",
			InitialKeys:   []byte("dbf"),
			KeysToDelete:  []byte("z"),
			ExpectedOrder: []byte("bdf"),
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []byte("dbfaceg"),
			KeysToDelete:  []byte("gfedcba"),
			ExpectedOrder: []byte{},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []byte("mc"),
			KeysToInsert:  []byte("rb"),
			KeysToDelete:  []byte("c"),
			ExpectedOrder: []byte("bmr"),
		},
	}

	for _, s := range strategies {
		for _, tc := range testCases {
			t.Run(s.Name+"/"+tc.Name, func(t *testing.T) {
				alloc := newCountingAllocator()
				tree := s.New(WithAllocator(alloc))
				insertKeys(tree, tc.InitialKeys)
				insertKeys(tree, tc.KeysToInsert)
				for _, k := range tc.KeysToDelete {
					tree.Delete(k)
				}

				assert.Equal(t, tc.ExpectedOrder, inorderKeys(tree))
				assert.True(t, IsOrdered(tree.Root()))
				assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
				assert.Equal(t, len(tc.ExpectedOrder), alloc.live)
				assert.Zero(t, alloc.doubleFrees)
				for _, k := range tc.KeysToDelete {
					_, ok := tree.Search(k)
					assert.False(t, ok, "key %q still present", k)
				}
			})
		}
	}
}

func TestSearch(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			tree := s.New()

			_, ok := tree.Search('a')
			assert.False(t, ok, "empty tree")

			insertKeys(tree, []byte("dbf"))
			v, ok := tree.Search('b')
			require.True(t, ok)
			assert.Equal(t, int('b'), v)

			v, ok = tree.Search('c')
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}
}

func TestInsertOverwritesWithoutAllocating(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))

			tree.Insert('k', 1)
			tree.Insert('k', 2)
			tree.Insert('k', 3)

			v, ok := tree.Search('k')
			require.True(t, ok)
			assert.Equal(t, 3, v)
			assert.Equal(t, 1, alloc.allocs)
			assert.Equal(t, 1, tree.Len())
		})
	}
}

func TestDeleteTwoChildrenUsesLeftRightmost(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))
			insertKeys(tree, []byte{5, 3, 8, 1, 4, 7, 9})
			root := tree.Root()

			tree.Delete(5)

			assert.Equal(t, []byte{1, 3, 4, 7, 8, 9}, inorderKeys(tree))
			assert.Same(t, root, tree.Root(), "the root node itself is kept")
			assert.Equal(t, byte(4), root.Key)
			assert.Equal(t, 4, root.Value)
			assert.Nil(t, root.Left().Right(), "4 was unlinked from under 3")
			assert.Equal(t, 6, tree.Len())
			assert.Equal(t, 1, alloc.frees)
		})
	}
}

func TestDeleteRightmostIsSubtreeRoot(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			tree := s.New()
			insertKeys(tree, []byte{5, 3, 8, 1})

			tree.Delete(5)

			root := tree.Root()
			require.NotNil(t, root)
			assert.Equal(t, byte(3), root.Key)
			require.NotNil(t, root.Left())
			assert.Equal(t, byte(1), root.Left().Key)
			assert.Equal(t, byte(8), root.Right().Key)
			assert.Equal(t, []byte{1, 3, 8}, inorderKeys(tree))
		})
	}
}

func TestDeleteRightmostKeepsItsLeftSubtree(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			tree := s.New()
			insertKeys(tree, []byte{10, 5, 15, 3, 8, 7, 6})

			tree.Delete(10)

			root := tree.Root()
			assert.Equal(t, byte(8), root.Key)
			five := root.Left()
			require.NotNil(t, five)
			require.NotNil(t, five.Right())
			assert.Equal(t, byte(7), five.Right().Key)
			assert.Equal(t, []byte{3, 5, 6, 7, 8, 15}, inorderKeys(tree))
		})
	}
}

func TestDispose(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))
			insertKeys(tree, []byte("hdlbfjnacegikmo"))

			tree.Dispose()

			assert.True(t, tree.Empty())
			assert.Nil(t, tree.Root())
			assert.Zero(t, tree.Len())
			assert.Zero(t, alloc.live)
			assert.Equal(t, 15, alloc.frees)
			for _, k := range []byte("hdlbfjnacegikmo") {
				_, ok := tree.Search(k)
				assert.False(t, ok)
			}

			tree.Dispose()
			assert.True(t, tree.Empty())
			assert.Zero(t, alloc.doubleFrees)
		})
	}
}

func TestDisposeDegenerateChain(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))
			for k := 0; k < 256; k++ {
				tree.Insert(byte(k), k)
			}
			require.Equal(t, 256, Height(tree.Root()))

			tree.Dispose()

			assert.Zero(t, alloc.live)
			assert.Zero(t, alloc.doubleFrees)
			assert.True(t, tree.Empty())
		})
	}
}

func TestTraversalOrders(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			tree := s.New()
			insertKeys(tree, []byte{5, 3, 8, 1, 4, 7, 9})

			assert.Equal(t, []byte{5, 3, 1, 4, 8, 7, 9}, Traverse(tree, PreOrder).Keys())
			assert.Equal(t, []byte{1, 3, 4, 5, 7, 8, 9}, Traverse(tree, InOrder).Keys())
			assert.Equal(t, []byte{1, 4, 3, 7, 9, 8, 5}, Traverse(tree, PostOrder).Keys())

			empty := s.New()
			assert.Zero(t, Traverse(empty, PreOrder).Len())
			assert.Zero(t, Traverse(empty, InOrder).Len())
			assert.Zero(t, Traverse(empty, PostOrder).Len())
		})
	}
}

func TestStrategiesAgreeOnEveryShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		keys := make([]byte, rng.Intn(64))
		for i := range keys {
			keys[i] = byte(rng.Intn(256))
		}
		rec := NewRecursive()
		it := NewIterative()
		insertKeys(rec, keys)
		insertKeys(it, keys)

		for _, o := range []Order{PreOrder, InOrder, PostOrder} {
			want := Traverse(rec, o).Pairs()
			got := Traverse(it, o).Pairs()
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round %d %s mismatch (-recursive +iterative):\n%s", round, o, diff)
			}
		}
	}
}

func TestAllocationAccounting(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))
			present := make(map[byte]int)

			for op := 0; op < 5000; op++ {
				k := byte(rng.Intn(48))
				if rng.Intn(3) == 0 {
					tree.Delete(k)
					delete(present, k)
				} else {
					v := rng.Int()
					tree.Insert(k, v)
					present[k] = v
				}
			}

			assert.Equal(t, len(present), alloc.live)
			assert.Equal(t, len(present), tree.Len())
			assert.Equal(t, len(present), Count(tree.Root()))
			assert.Zero(t, alloc.doubleFrees)
			assert.True(t, IsOrdered(tree.Root()))
			for k, v := range present {
				got, ok := tree.Search(k)
				require.True(t, ok)
				assert.Equal(t, v, got)
			}

			tree.Dispose()
			assert.Zero(t, alloc.live)
			assert.Zero(t, alloc.doubleFrees)
		})
	}
}

func TestInsertAllocationFailure(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))
			insertKeys(tree, []byte("bac"))

			alloc.fail = true
			tree.Insert('d', 1)
			tree.Insert('a', 99)

			_, ok := tree.Search('d')
			assert.False(t, ok, "insert is dropped when no node can be allocated")
			v, _ := tree.Search('a')
			assert.Equal(t, 99, v, "overwrite needs no allocation")
			assert.Equal(t, []byte("abc"), inorderKeys(tree))
			assert.Equal(t, 3, tree.Len())
		})
	}
}

func TestInitOrphansPopulatedTree(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name, func(t *testing.T) {
			alloc := newCountingAllocator()
			tree := s.New(WithAllocator(alloc))
			insertKeys(tree, []byte("abc"))

			tree.Init()

			assert.True(t, tree.Empty())
			assert.Zero(t, tree.Len())
			assert.Equal(t, 3, alloc.live, "Init does not free")
		})
	}
}

func TestNew(t *testing.T) {
	m, err := New(StrategyRecursive)
	require.NoError(t, err)
	assert.IsType(t, &Recursive{}, m)

	m, err = New(StrategyIterative)
	require.NoError(t, err)
	assert.IsType(t, &Iterative{}, m)

	_, err = New("splay")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestParseStrategyAndOrder(t *testing.T) {
	s, err := ParseStrategy(" Iterative ")
	require.NoError(t, err)
	assert.Equal(t, StrategyIterative, s)

	_, err = ParseStrategy("avl")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	for name, want := range map[string]Order{
		"pre":        PreOrder,
		"inorder":    InOrder,
		"Post-Order": PostOrder,
	} {
		got, err := ParseOrder(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err = ParseOrder("level")
	assert.Error(t, err)
}
