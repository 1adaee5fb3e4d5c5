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

import "fmt"

// Case classifies the shape of an imbalance found at a node.
type Case int

const (
	Balanced Case = iota
	LeftLeft
	LeftRight
	RightRight
	RightLeft
)

func (c Case) String() string {
	switch c {
	case Balanced:
		return "balanced"
	case LeftLeft:
		return "left-left"
	case LeftRight:
		return "left-right"
	case RightRight:
		return "right-right"
	case RightLeft:
		return "right-left"
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// RotationStats counts how often each imbalance case was repaired.
type RotationStats struct {
	LeftLeft   int
	LeftRight  int
	RightRight int
	RightLeft  int
}

// Single is the number of single rotations performed.
func (s RotationStats) Single() int {
	return s.LeftLeft + s.RightRight
}

// Double is the number of double rotations performed.
func (s RotationStats) Double() int {
	return s.LeftRight + s.RightLeft
}

func (s *RotationStats) record(c Case) {
	switch c {
	case LeftLeft:
		s.LeftLeft++
	case LeftRight:
		s.LeftRight++
	case RightRight:
		s.RightRight++
	case RightLeft:
		s.RightLeft++
	}
}

// classifyInsert picks the repair for n after an insertion below it. The
// child's balance factor is never zero here, so the strict comparison
// selects a double rotation only when the child leans away from n.
func classifyInsert[K any](n *Node[K]) Case {
	bf := balanceFactor(n)
	switch {
	case bf > 1:
		if balanceFactor(n.left) > 0 {
			return LeftLeft
		}
		return LeftRight
	case bf < -1:
		if balanceFactor(n.right) < 0 {
			return RightRight
		}
		return RightLeft
	}
	return Balanced
}

// classifyDelete picks the repair for n after a deletion below it. A
// deletion can leave the taller child exactly balanced; that shape is
// fixed by a single rotation, hence the non-strict comparison.
func classifyDelete[K any](n *Node[K]) Case {
	bf := balanceFactor(n)
	switch {
	case bf > 1:
		if balanceFactor(n.left) >= 0 {
			return LeftLeft
		}
		return LeftRight
	case bf < -1:
		if balanceFactor(n.right) <= 0 {
			return RightRight
		}
		return RightLeft
	}
	return Balanced
}

// repair applies the rotations for c and returns the new subtree root.
func repair[K any](n *Node[K], c Case) *Node[K] {
	switch c {
	case LeftLeft:
		return rotateRight(n)
	case LeftRight:
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case RightRight:
		return rotateLeft(n)
	case RightLeft:
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

func (t *Tree[K]) rebalanceInsert(n *Node[K]) *Node[K] {
	updateHeight(n)
	c := classifyInsert(n)
	t.rotations.record(c)
	return repair(n, c)
}

func (t *Tree[K]) rebalanceDelete(n *Node[K]) *Node[K] {
	updateHeight(n)
	c := classifyDelete(n)
	t.rotations.record(c)
	return repair(n, c)
}
