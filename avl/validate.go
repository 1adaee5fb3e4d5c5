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

package avl

import (
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("keys out of order")
	ErrBalance = errors.New("subtree out of balance")
	ErrHeight  = errors.New("stale cached height")
	ErrCount   = errors.New("node count mismatch")
)

// Validate walks the whole tree and checks the search order, the balance
// of every node, every cached height and the node count. It returns nil
// for a well formed tree.
func (t *Tree[K]) Validate() error {
	nodes, err := t.validate(t.root, nil, nil)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("%w: counted %d nodes, tree reports %d", ErrCount, nodes, t.count)
	}
	return nil
}

// validate checks the subtree at node, whose keys must lie strictly
// between lo and hi when those are set, and returns its node count.
func (t *Tree[K]) validate(node *Node[K], lo, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && t.compare(node.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrder, node.key, *lo)
	}
	if hi != nil && t.compare(node.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, node.key, *hi)
	}

	left, err := t.validate(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	right, err := t.validate(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(height(node.left), height(node.right)) + 1; node.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrHeight, node.key, node.height, want)
	}
	if bf := balanceFactor(node); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %d", ErrBalance, node.key, bf)
	}
	return left + right + 1, nil
}
