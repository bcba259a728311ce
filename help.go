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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **assoc %s**

A binary search tree keyed by single characters and a chained hash table keyed by strings, with a small CLI to drive them.

Built with Go %s

# 1. Commands
* **count** [text...] counts letters (case folded), spaces and everything else ('_') into a tree. Reads stdin without arguments. Flags: --order pre|in|post, --balance
* **tree** <script|-> runs a tree script
* **table** <script|-> runs a hash table script
* **settings** shows (and creates) ~/.assoc.yaml
* **version** prints the version

# 2. Tree scripts
One instruction per line, words split like a shell does:

* insert <key> <int>, search <key>, delete <key>
* balance, dispose
* preorder, inorder, postorder
* height, print

# 3. Table scripts
* insert <key> <float>, get <key>, search <key>, delete <key>
* clear, dump, len

Quote keys that contain spaces: insert "two words" 2.5

# 4. Configuration
Every setting in ~/.assoc.yaml can be overridden with a flag of the same name, for example --tree.strategy recursive or --hashtable.buckets 13.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
