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
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/assoc/bst"
	"github.com/cybrota/assoc/hashtable"
)

// instruction is one script verb.
type instruction struct {
	args  int // exact argument count
	usage string
	run   func(args []string) error
}

// Script executes line-oriented instructions against a tree or a hash
// table. Lines are split like a shell would, so keys may be quoted; blank
// lines and lines starting with '#' are skipped.
type Script struct {
	instructions map[string]instruction
	showProgress bool
	progressOut  io.Writer
}

func newScript(showProgress bool) *Script {
	return &Script{
		instructions: make(map[string]instruction),
		showProgress: showProgress,
		progressOut:  os.Stderr,
	}
}

// register adds a verb; later registrations replace earlier ones.
func (s *Script) register(name string, args int, usage string, run func(args []string) error) {
	s.instructions[name] = instruction{args: args, usage: usage, run: run}
}

// Usage lists every verb the script understands.
func (s *Script) Usage() []string {
	usages := make([]string, 0, len(s.instructions))
	for _, ins := range s.instructions {
		usages = append(usages, ins.usage)
	}
	sort.Strings(usages)
	return usages
}

// Run executes r line by line and stops at the first failing line.
func (s *Script) Run(r io.Reader) error {
	var bar *progressbar.ProgressBar
	if s.showProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Running script..."),
			progressbar.OptionSetWriter(s.progressOut),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(s.progressOut)
			}),
		)
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		if len(words) == 0 {
			continue
		}

		if err := s.exec(words); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		if bar != nil {
			bar.Add(1) // nolint: errcheck
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read script")
	}
	if bar != nil {
		bar.Finish() // nolint: errcheck
	}
	return nil
}

func (s *Script) exec(words []string) error {
	name := strings.ToLower(words[0])
	ins, ok := s.instructions[name]
	if !ok {
		return errors.Errorf("unknown instruction %q", words[0])
	}
	if len(words)-1 != ins.args {
		return errors.Errorf("%s takes %d argument(s), usage: %s", name, ins.args, ins.usage)
	}
	return ins.run(words[1:])
}

func parseTreeKey(arg string) (byte, error) {
	if len(arg) != 1 {
		return 0, errors.Errorf("tree key must be a single byte, got %q", arg)
	}
	return arg[0], nil
}

// newTreeScript binds the tree verbs to tree, writing results to w.
func newTreeScript(w io.Writer, tree bst.Map, showProgress bool) *Script {
	s := newScript(showProgress)

	s.register("insert", 2, "insert <key> <int>", func(args []string) error {
		key, err := parseTreeKey(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid value %q", args[1])
		}
		tree.Insert(key, value)
		return nil
	})
	s.register("search", 1, "search <key>", func(args []string) error {
		key, err := parseTreeKey(args[0])
		if err != nil {
			return err
		}
		if value, ok := tree.Search(key); ok {
			fmt.Fprintf(w, "%s = %d\n", formatKey(key), value)
		} else {
			fmt.Fprintf(w, "%s not found\n", formatKey(key))
		}
		return nil
	})
	s.register("delete", 1, "delete <key>", func(args []string) error {
		key, err := parseTreeKey(args[0])
		if err != nil {
			return err
		}
		tree.Delete(key)
		return nil
	})
	s.register("balance", 0, "balance", func([]string) error {
		bst.Balance(tree)
		return nil
	})
	s.register("dispose", 0, "dispose", func([]string) error {
		tree.Dispose()
		return nil
	})
	for _, order := range []bst.Order{bst.PreOrder, bst.InOrder, bst.PostOrder} {
		order := order
		s.register(order.String(), 0, order.String(), func([]string) error {
			renderKeys(w, bst.Traverse(tree, order))
			return nil
		})
	}
	s.register("height", 0, "height", func([]string) error {
		renderTreeStats(w, tree)
		return nil
	})
	s.register("print", 0, "print", func([]string) error {
		renderTree(w, tree.Root())
		return nil
	})

	return s
}

// newTableScript binds the hash table verbs to table, writing results to w.
func newTableScript(w io.Writer, table *hashtable.Table, showProgress bool) *Script {
	s := newScript(showProgress)

	s.register("insert", 2, "insert <key> <float>", func(args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q", args[1])
		}
		table.Insert(args[0], value)
		return nil
	})
	s.register("get", 1, "get <key>", func(args []string) error {
		if v := table.Get(args[0]); v != nil {
			fmt.Fprintf(w, "%s = %g\n", strconv.Quote(args[0]), *v)
		} else {
			fmt.Fprintf(w, "%s not found\n", strconv.Quote(args[0]))
		}
		return nil
	})
	s.register("search", 1, "search <key>", func(args []string) error {
		if e := table.Search(args[0]); e != nil {
			fmt.Fprintf(w, "%s = %g (bucket %d)\n", strconv.Quote(e.Key), e.Value, hashtable.Hash(e.Key, table.Size()))
		} else {
			fmt.Fprintf(w, "%s not found\n", strconv.Quote(args[0]))
		}
		return nil
	})
	s.register("delete", 1, "delete <key>", func(args []string) error {
		table.Delete(args[0])
		return nil
	})
	s.register("clear", 0, "clear", func([]string) error {
		table.DeleteAll()
		return nil
	})
	s.register("dump", 0, "dump", func([]string) error {
		renderTable(w, table)
		return nil
	})
	s.register("len", 0, "len", func([]string) error {
		fmt.Fprintln(w, table.Len())
		return nil
	})

	return s
}

// openScript returns stdin for "-" and the named file otherwise.
func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %s", path)
	}
	return f, nil
}
