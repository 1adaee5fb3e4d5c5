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
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func usageMarkdown() string {
	var cmds strings.Builder
	for _, name := range []string{"insert", "delete", "search", "range", "inorder", "preorder", "min", "max", "len", "height", "print", "check", "stats", "export", "clear"} {
		cmd := commands[name]
		fmt.Fprintf(&cmds, "* `%s`: %s\n", cmd.usage, cmd.summary)
	}

	return fmt.Sprintf(`
 **ordtree %s**

A height-balanced ordered key tree you can drive from the shell.
Every insert and delete rebalances the path it touched, so searches stay logarithmic.

Built with Go %s

# 1. Commands
* ordtree demo: walk through the reference insert/delete scenario
* ordtree load FILE: bulk load keys, one per line
* ordtree run [SCRIPT]: execute a tree script (stdin when omitted)
* ordtree explore [FILE]: interactive explorer
* ordtree settings: show or create ~/.ordtree.yaml

# 2. Script language
One command per line, arguments split like a shell (quote keys with spaces).
Lines starting with '#' are comments.

%s
# 3. Key types
* int, float, string (set tree.key_type, ORDTREE_TREE_KEY_TYPE or --key-type)

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), cmds.String())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
