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
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/cybrota/ordtree/avl"
)

const (
	keyTypeInt    = "int"
	keyTypeFloat  = "float"
	keyTypeString = "string"
)

var keyTypes = []string{keyTypeInt, keyTypeFloat, keyTypeString}

var (
	errKeyType = errors.New("unsupported key type")
	errBadKey  = errors.New("malformed key")
)

func isKeyType(kind string) bool {
	return slices.Contains(keyTypes, kind)
}

// Keyspace is a tree whose keys are read from and written as text. The
// concrete key type is fixed when the keyspace is created.
type Keyspace interface {
	Kind() string
	// Canonical parses raw and formats it back, so that "007" and "7" name
	// the same int key.
	Canonical(raw string) (string, error)
	Insert(raw string) (bool, error)
	Delete(raw string) (bool, error)
	Search(raw string) (bool, error)
	Range(lo, hi string) ([]string, error)
	InOrder() []string
	PreOrder() []string
	Min() (string, bool)
	Max() (string, bool)
	Len() int
	Height() int
	Rotations() avl.RotationStats
	Check() error
	Render(w io.Writer) error
	Clear()
}

type keyspace[K cmp.Ordered] struct {
	kind   string
	tree   *avl.Tree[K]
	parse  func(string) (K, error)
	format func(K) string
}

func newKeyspace(kind string) (Keyspace, error) {
	switch kind {
	case keyTypeInt:
		return &keyspace[int]{
			kind:   kind,
			tree:   avl.New[int](),
			parse:  strconv.Atoi,
			format: strconv.Itoa,
		}, nil
	case keyTypeFloat:
		return &keyspace[float64]{
			kind:   kind,
			tree:   avl.New[float64](),
			parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
			format: formatFloat,
		}, nil
	case keyTypeString:
		return &keyspace[string]{
			kind:   kind,
			tree:   avl.New[string](),
			parse:  func(s string) (string, error) { return s, nil },
			format: func(s string) string { return s },
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", errKeyType, kind)
}

// formatFloat writes -0 as 0, since the tree orders them as one key.
func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (ks *keyspace[K]) Kind() string {
	return ks.kind
}

func (ks *keyspace[K]) key(raw string) (K, error) {
	k, err := ks.parse(raw)
	if err != nil {
		return k, fmt.Errorf("%w: %q is not a valid %s key", errBadKey, raw, ks.kind)
	}
	return k, nil
}

func (ks *keyspace[K]) Canonical(raw string) (string, error) {
	k, err := ks.key(raw)
	if err != nil {
		return "", err
	}
	return ks.format(k), nil
}

func (ks *keyspace[K]) Insert(raw string) (bool, error) {
	k, err := ks.key(raw)
	if err != nil {
		return false, err
	}
	return ks.tree.Insert(k), nil
}

func (ks *keyspace[K]) Delete(raw string) (bool, error) {
	k, err := ks.key(raw)
	if err != nil {
		return false, err
	}
	return ks.tree.Delete(k), nil
}

func (ks *keyspace[K]) Search(raw string) (bool, error) {
	k, err := ks.key(raw)
	if err != nil {
		return false, err
	}
	return ks.tree.Search(k), nil
}

func (ks *keyspace[K]) Range(lo, hi string) ([]string, error) {
	from, err := ks.key(lo)
	if err != nil {
		return nil, err
	}
	to, err := ks.key(hi)
	if err != nil {
		return nil, err
	}
	var keys []string
	for k := range ks.tree.Range(from, to) {
		keys = append(keys, ks.format(k))
	}
	return keys, nil
}

func (ks *keyspace[K]) formatAll(keys []K) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = ks.format(k)
	}
	return out
}

func (ks *keyspace[K]) InOrder() []string {
	return ks.formatAll(ks.tree.InOrder())
}

func (ks *keyspace[K]) PreOrder() []string {
	return ks.formatAll(ks.tree.PreOrder())
}

func (ks *keyspace[K]) Min() (string, bool) {
	k, ok := ks.tree.Min()
	if !ok {
		return "", false
	}
	return ks.format(k), true
}

func (ks *keyspace[K]) Max() (string, bool) {
	k, ok := ks.tree.Max()
	if !ok {
		return "", false
	}
	return ks.format(k), true
}

func (ks *keyspace[K]) Len() int {
	return ks.tree.Len()
}

func (ks *keyspace[K]) Height() int {
	return ks.tree.Height()
}

func (ks *keyspace[K]) Rotations() avl.RotationStats {
	return ks.tree.Rotations()
}

func (ks *keyspace[K]) Check() error {
	return ks.tree.Validate()
}

func (ks *keyspace[K]) Render(w io.Writer) error {
	return ks.tree.Fprint(w)
}

func (ks *keyspace[K]) Clear() {
	ks.tree.Clear()
}
