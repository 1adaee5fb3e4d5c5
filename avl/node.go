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

// Node is a single entry of the tree. Nodes are owned by their parent and
// must not be modified by callers.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int
}

func newNode[K any](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the root of the left subtree, or nil.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the root of the right subtree, or nil.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Height returns the cached height of the subtree rooted at n. A nil node
// has height 0.
func (n *Node[K]) Height() int {
	return height(n)
}

// min returns the leftmost node of the subtree.
func (n *Node[K]) min() *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K]) max() *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
