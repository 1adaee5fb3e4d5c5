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
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errArity          = errors.New("wrong number of arguments")
)

type command struct {
	usage   string
	summary string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(in *Interpreter, args []string) error
}

var commands map[string]command

func init() {
	// assigned here because the help command refers back to the table
	commands = map[string]command{
		"insert":   {usage: "insert KEY...", summary: "add keys, duplicates are ignored", minArgs: 1, maxArgs: -1, run: (*Interpreter).insert},
		"delete":   {usage: "delete KEY...", summary: "remove keys, missing keys are ignored", minArgs: 1, maxArgs: -1, run: (*Interpreter).delete},
		"search":   {usage: "search KEY...", summary: "report whether keys are present", minArgs: 1, maxArgs: -1, run: (*Interpreter).search},
		"range":    {usage: "range LO HI", summary: "keys k with LO <= k < HI", minArgs: 2, maxArgs: 2, run: (*Interpreter).rangeKeys},
		"inorder":  {usage: "inorder", summary: "all keys in ascending order", run: (*Interpreter).inOrder},
		"preorder": {usage: "preorder", summary: "all keys root first", run: (*Interpreter).preOrder},
		"min":      {usage: "min", summary: "smallest key", run: (*Interpreter).min},
		"max":      {usage: "max", summary: "largest key", run: (*Interpreter).max},
		"len":      {usage: "len", summary: "number of keys", run: (*Interpreter).length},
		"height":   {usage: "height", summary: "tree height", run: (*Interpreter).height},
		"print":    {usage: "print", summary: "draw the tree sideways", run: (*Interpreter).print},
		"check":    {usage: "check", summary: "validate every tree invariant", run: (*Interpreter).check},
		"stats":    {usage: "stats", summary: "session and rotation counters", run: (*Interpreter).stats},
		"export":   {usage: "export", summary: "YAML snapshot of the tree", run: (*Interpreter).export},
		"clear":    {usage: "clear", summary: "remove every key", run: (*Interpreter).clear},
		"help":     {usage: "help", summary: "list commands", run: (*Interpreter).help},
	}
}

// Interpreter executes tree commands, one per line, against a session.
type Interpreter struct {
	session *Session
	out     io.Writer
}

func NewInterpreter(s *Session, out io.Writer) *Interpreter {
	return &Interpreter{session: s, out: out}
}

// Run executes every line of r, stopping at the first failing line.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Same 1 MiB line limit as key files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := in.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return nil
}

// Exec executes a single command line. Arguments are split like a shell
// would, so string keys containing spaces can be quoted.
func (in *Interpreter) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := splitCommand(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}
	args = args[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w: usage: %s", errArity, cmd.usage)
	}
	return cmd.run(in, args)
}

// splitCommand tokenizes a command line the way a shell would.
func splitCommand(line string) ([]string, error) {
	return shellwords.Parse(line)
}

func formatKeys(keys []string) string {
	return "[" + strings.Join(keys, " ") + "]"
}

func (in *Interpreter) insert(args []string) error {
	for _, key := range args {
		inserted, err := in.session.Insert(key)
		if err != nil {
			return err
		}
		if inserted {
			fmt.Fprintf(in.out, "inserted %s\n", key)
		} else {
			fmt.Fprintf(in.out, "duplicate %s\n", key)
		}
	}
	return nil
}

func (in *Interpreter) delete(args []string) error {
	for _, key := range args {
		deleted, err := in.session.Delete(key)
		if err != nil {
			return err
		}
		if deleted {
			fmt.Fprintf(in.out, "deleted %s\n", key)
		} else {
			fmt.Fprintf(in.out, "missing %s\n", key)
		}
	}
	return nil
}

func (in *Interpreter) search(args []string) error {
	for _, key := range args {
		found, err := in.session.Search(key)
		if err != nil {
			return err
		}
		if found {
			fmt.Fprintf(in.out, "%s: found\n", key)
		} else {
			fmt.Fprintf(in.out, "%s: not found\n", key)
		}
	}
	return nil
}

func (in *Interpreter) rangeKeys(args []string) error {
	keys, err := in.session.Keys().Range(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(in.out, formatKeys(keys))
	return nil
}

func (in *Interpreter) inOrder([]string) error {
	fmt.Fprintln(in.out, formatKeys(in.session.Keys().InOrder()))
	return nil
}

func (in *Interpreter) preOrder([]string) error {
	fmt.Fprintln(in.out, formatKeys(in.session.Keys().PreOrder()))
	return nil
}

func (in *Interpreter) min([]string) error {
	if k, ok := in.session.Keys().Min(); ok {
		fmt.Fprintln(in.out, k)
	} else {
		fmt.Fprintln(in.out, "(empty)")
	}
	return nil
}

func (in *Interpreter) max([]string) error {
	if k, ok := in.session.Keys().Max(); ok {
		fmt.Fprintln(in.out, k)
	} else {
		fmt.Fprintln(in.out, "(empty)")
	}
	return nil
}

func (in *Interpreter) length([]string) error {
	fmt.Fprintln(in.out, in.session.Keys().Len())
	return nil
}

func (in *Interpreter) height([]string) error {
	fmt.Fprintln(in.out, in.session.Keys().Height())
	return nil
}

func (in *Interpreter) print([]string) error {
	return in.session.Render(in.out)
}

func (in *Interpreter) check([]string) error {
	if err := in.session.Check(); err != nil {
		return err
	}
	fmt.Fprintln(in.out, "ok")
	return nil
}

func (in *Interpreter) stats([]string) error {
	s := in.session.Stats()
	r := in.session.Keys().Rotations()
	fmt.Fprintf(in.out, "keys:        %d (height %d)\n", in.session.Keys().Len(), in.session.Keys().Height())
	fmt.Fprintf(in.out, "inserts:     %d (%d duplicates)\n", s.Inserted, s.Duplicates)
	fmt.Fprintf(in.out, "deletes:     %d (%d missing)\n", s.Deleted, s.Missing)
	fmt.Fprintf(in.out, "searches:    %d (%d filtered, %d cached)\n", s.Searches, s.FilterSkips, s.CacheHits)
	fmt.Fprintf(in.out, "rotations:   LL=%d LR=%d RR=%d RL=%d\n", r.LeftLeft, r.LeftRight, r.RightRight, r.RightLeft)
	return nil
}

func (in *Interpreter) export([]string) error {
	return writeSnapshot(in.out, in.session.Snapshot())
}

func (in *Interpreter) clear([]string) error {
	in.session.Clear()
	fmt.Fprintln(in.out, "cleared")
	return nil
}

func (in *Interpreter) help([]string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(in.out, "  %-16s %s\n", cmd.usage, cmd.summary)
	}
	return nil
}
