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
)

// demoSteps replays the textbook sequence: three ascending keys force a
// right-right rotation, 40 and 50 force another one, 25 forces a
// right-left double rotation, and deleting 10 needs no rotation at all.
type demoStep struct {
	note string
	line string
}

var demoSteps = []demoStep{
	{"insert 10, 20 and 30 (right-right at 10)", "insert 10 20 30"},
	{"", "preorder"},
	{"insert 40 and 50 (right-right at 30)", "insert 40 50"},
	{"", "preorder"},
	{"insert 25 (right-left at 20)", "insert 25"},
	{"", "preorder"},
	{"", "print"},
	{"delete 10", "delete 10"},
	{"", "preorder"},
	{"", "inorder"},
	{"", "check"},
}

func runDemo(w io.Writer, s *Session) error {
	return playSteps(w, s, demoSteps)
}

// playSteps echoes and executes each step, stopping at the first failure.
func playSteps(w io.Writer, s *Session, steps []demoStep) error {
	in := NewInterpreter(s, w)
	for _, step := range steps {
		if step.note != "" {
			fmt.Fprintf(w, "\n%s# %s%s\n", Info, step.note, Reset)
		}
		fmt.Fprintf(w, "%s> %s%s\n", Green, step.line, Reset)
		if err := in.Exec(step.line); err != nil {
			fmt.Fprintf(w, "%s! %v%s\n", Error, err, Reset)
			return err
		}
	}
	return nil
}
