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
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/assoc/bst"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	logo := fmt.Sprintf("assoc %s: binary search tree and chained hash table playground", version)

	var cmdCount = &cobra.Command{
		Use:   "count [text...]",
		Short: "Count letters, spaces and other characters into a tree",
		Long:  fmt.Sprintf("%s\n\n%s", logo, "Count folds A-Z to a-z and tallies every other non-space byte under '_'"),
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			order, err := bst.ParseOrder(cmd.Flag("order").Value.String())
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			balance, _ := cmd.Flags().GetBool("balance")

			input, err := countInput(args, os.Stdin)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			if err := countLetters(os.Stdout, loadSettings(), input, order, balance); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}
	cmdCount.Flags().String("order", "in", "traversal order used for printing: pre, in or post")
	cmdCount.Flags().Bool("balance", false, "balance the tree before printing")

	var cmdTree = &cobra.Command{
		Use:   "tree <script|->",
		Short: "Run a tree script",
		Long:  fmt.Sprintf("%s\n\n%s", logo, "Tree runs insert/search/delete/balance/traversal instructions, one per line"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runScriptFile(args[0], runTreeScript); err != nil {
				log.Fatalf("Error running tree script: %v", err)
			}
		},
	}

	var cmdTable = &cobra.Command{
		Use:   "table <script|->",
		Short: "Run a hash table script",
		Long:  fmt.Sprintf("%s\n\n%s", logo, "Table runs insert/get/search/delete/clear/dump instructions, one per line"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runScriptFile(args[0], runTableScript); err != nil {
				log.Fatalf("Error running table script: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the active configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print assoc usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print assoc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "assoc",
		Version: version,
		Long:    logo,
	}
	RegisterFlags(rootCmd)
	rootCmd.AddCommand(cmdCount, cmdTree, cmdTable, cmdSettings, cmdUsage, cmdVersion)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
