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

// height reads the cached height; it never walks the subtree.
func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[K any](n *Node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is the left subtree height minus the right subtree height.
func balanceFactor[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}
