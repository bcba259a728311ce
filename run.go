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
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/cybrota/assoc/bst"
)

// countLetters tallies input into a fresh tree and prints the buckets in
// the requested traversal order.
func countLetters(w io.Writer, config *Config, input []byte, order bst.Order, balance bool) error {
	tree, err := config.newTree()
	if err != nil {
		return err
	}

	bst.LetterCount(tree, input)
	if balance {
		bst.Balance(tree)
	}

	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Letter count (%s, %s)", config.Tree.Strategy, order)))
	renderPairs(w, bst.Traverse(tree, order).Pairs())
	return nil
}

// countInput joins the arguments, or reads stdin when there are none.
func countInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return data, nil
}

func runTreeScript(w io.Writer, config *Config, r io.Reader) error {
	tree, err := config.newTree()
	if err != nil {
		return err
	}
	defer tree.Dispose()

	return newTreeScript(w, tree, config.Script.ShowProgress).Run(r)
}

func runTableScript(w io.Writer, config *Config, r io.Reader) error {
	table, err := config.newTable()
	if err != nil {
		return err
	}
	defer table.DeleteAll()

	return newTableScript(w, table, config.Script.ShowProgress).Run(r)
}

// runScriptFile opens path ("-" for stdin) and hands it to run.
func runScriptFile(path string, run func(io.Writer, *Config, io.Reader) error) error {
	f, err := openScript(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return run(os.Stdout, loadSettings(), f)
}
