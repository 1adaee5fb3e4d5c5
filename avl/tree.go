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

import "cmp"

// Tree is an AVL tree of unique keys. The zero value is not usable; create
// trees with New or NewFunc.
type Tree[K any] struct {
	root      *Node[K]
	compare   func(a, b K) int
	count     int
	rotations RotationStats
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b, and must define a strict total order over every key stored.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K]{compare: compare}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Rotations returns the number of repairs made so far, per case.
func (t *Tree[K]) Rotations() RotationStats {
	return t.rotations
}

// Clear drops every key. Rotation counters are kept.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
}

// Insert adds key to the tree. It reports false, leaving the tree
// untouched, when the key is already present.
func (t *Tree[K]) Insert(key K) bool {
	root, inserted := t.insert(t.root, key)
	if inserted {
		t.root = root
		t.count++
	}
	return inserted
}

func (t *Tree[K]) insert(node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return newNode(key), true
	}

	var inserted bool
	switch c := t.compare(key, node.key); {
	case c < 0:
		node.left, inserted = t.insert(node.left, key)
	case c > 0:
		node.right, inserted = t.insert(node.right, key)
	default:
		return node, false
	}
	if !inserted {
		return node, false
	}

	return t.rebalanceInsert(node), true
}

// Delete removes key from the tree. It reports false when the key was not
// present.
func (t *Tree[K]) Delete(key K) bool {
	root, deleted := t.delete(t.root, key)
	if deleted {
		t.root = root
		t.count--
	}
	return deleted
}

func (t *Tree[K]) delete(node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	var deleted bool
	switch c := t.compare(key, node.key); {
	case c < 0:
		node.left, deleted = t.delete(node.left, key)
	case c > 0:
		node.right, deleted = t.delete(node.right, key)
	default:
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}
		// Two children: take over the in-order successor's key and remove
		// the successor, which has no left child.
		successor := node.right.min()
		node.key = successor.key
		node.right, _ = t.delete(node.right, successor.key)
		deleted = true
	}
	if !deleted {
		return node, false
	}

	return t.rebalanceDelete(node), true
}

// Search reports whether key is present.
func (t *Tree[K]) Search(key K) bool {
	return t.find(key) != nil
}

func (t *Tree[K]) find(key K) *Node[K] {
	node := t.root
	for node != nil {
		switch c := t.compare(key, node.key); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Min returns the smallest key. ok is false when the tree is empty.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return t.root.min().key, true
}

// Max returns the largest key. ok is false when the tree is empty.
func (t *Tree[K]) Max() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return t.root.max().key, true
}
