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

import "iter"

// All returns an iterator over every key in ascending order. The iterator
// may be ranged over any number of times; the tree must not be modified
// while a range loop over it is running.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		var stack []*Node[K]
		node := t.root
		for node != nil || len(stack) > 0 {
			for node != nil {
				stack = append(stack, node)
				node = node.left
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node.key) {
				return
			}
			node = node.right
		}
	}
}

// Backward returns an iterator over every key in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		var stack []*Node[K]
		node := t.root
		for node != nil || len(stack) > 0 {
			for node != nil {
				stack = append(stack, node)
				node = node.right
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node.key) {
				return
			}
			node = node.left
		}
	}
}

// Range returns an iterator over the keys k with lo <= k < hi, in
// ascending order. Subtrees entirely outside the interval are skipped.
func (t *Tree[K]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		var stack []*Node[K]
		descend := func(node *Node[K]) {
			for node != nil {
				if t.compare(node.key, lo) < 0 {
					node = node.right
					continue
				}
				stack = append(stack, node)
				node = node.left
			}
		}

		descend(t.root)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if t.compare(node.key, hi) >= 0 {
				return
			}
			if !yield(node.key) {
				return
			}
			descend(node.right)
		}
	}
}

// InOrder returns all keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// PreOrder returns all keys root first, then the left subtree, then the
// right subtree. Two trees holding the same keys have equal pre-order
// sequences only if they have the same shape.
func (t *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, t.count)
	preOrder(t.root, &keys)
	return keys
}

func preOrder[K any](node *Node[K], keys *[]K) {
	if node == nil {
		return
	}
	*keys = append(*keys, node.key)
	preOrder(node.left, keys)
	preOrder(node.right, keys)
}
