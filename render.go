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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/assoc/bst"
	"github.com/cybrota/assoc/hashtable"
)

// formatKey shows a tree key as a quoted character so that the space
// bucket stays visible.
func formatKey(k byte) string {
	return strconv.QuoteRuneToASCII(rune(k))
}

func renderPairs(w io.Writer, pairs []bst.Pair) {
	for _, p := range pairs {
		fmt.Fprintf(w, "%-8s %d\n", keyStyle.Render(formatKey(p.Key)), p.Value)
	}
}

func renderKeys(w io.Writer, items *bst.Items) {
	keys := make([]string, 0, items.Len())
	for _, n := range items.Nodes() {
		keys = append(keys, formatKey(n.Key))
	}
	fmt.Fprintln(w, strings.Join(keys, " "))
}

// renderTree draws the tree on its side: right subtrees above their
// parent, left subtrees below, one level of indentation per depth.
func renderTree(w io.Writer, root *bst.Node) {
	if root == nil {
		fmt.Fprintln(w, mutedStyle.Render("(empty)"))
		return
	}
	renderSubtree(w, root, 0)
}

func renderSubtree(w io.Writer, node *bst.Node, depth int) {
	if node == nil {
		return
	}
	renderSubtree(w, node.Right(), depth+1)
	fmt.Fprintf(w, "%s%s[%d]\n", strings.Repeat("    ", depth), formatKey(node.Key), node.Value)
	renderSubtree(w, node.Left(), depth+1)
}

func renderTreeStats(w io.Writer, tree bst.Map) {
	root := tree.Root()
	fmt.Fprintf(w, "nodes: %d height: %d balanced: %t\n", tree.Len(), bst.Height(root), bst.IsBalanced(root))
}

// renderTable lists the non-empty buckets, one chain per line from head to
// tail, followed by a summary.
func renderTable(w io.Writer, table *hashtable.Table) {
	longest := 0
	for i := 0; i < table.Size(); i++ {
		head := table.Bucket(i)
		if head == nil {
			continue
		}

		var chain []string
		for e := head; e != nil; e = e.Next() {
			chain = append(chain, fmt.Sprintf("%s=%g", strconv.Quote(e.Key), e.Value))
		}
		longest = max(longest, len(chain))
		fmt.Fprintf(w, "%s %s\n", keyStyle.Render(fmt.Sprintf("[%3d]", i)), strings.Join(chain, " -> "))
	}

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d entries in %d buckets, longest chain %d",
		table.Len(), table.Size(), longest)))
}
