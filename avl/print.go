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
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes a sideways drawing of the tree to w: the right subtree is
// drawn above its parent and the left subtree below, so reading the keys
// from bottom to top gives ascending order. Each node is followed by its
// height and balance factor.
func (t *Tree[K]) Fprint(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return fprintNode(w, t.root, "", rootBranch)
}

func fprintNode[K any](w io.Writer, node *Node[K], prefix string, br branch) error {
	if node.right != nil {
		pad := "      "
		if br == leftBranch {
			pad = "|     "
		}
		if err := fprintNode(w, node.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "+---- "
	case leftBranch:
		edge = "\\---- "
	case rightBranch:
		edge = "/---- "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v (h=%d bf=%+d)\n", prefix, edge, node.key, node.height, balanceFactor(node)); err != nil {
		return err
	}

	if node.left != nil {
		pad := "      "
		if br == rightBranch {
			pad = "|     "
		}
		if err := fprintNode(w, node.left, prefix+pad, leftBranch); err != nil {
			return err
		}
	}
	return nil
}
