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

// rotateRight lifts z.left into z's place and returns it. z.left must not
// be nil.
//
//	    z            y
//	   / \          / \
//	  y   T4  =>  T1   z
//	 / \              / \
//	T1  T3          T3   T4
func rotateRight[K any](z *Node[K]) *Node[K] {
	y := z.left
	z.left = y.right
	y.right = z

	// z is now below y, so it has to be updated first
	updateHeight(z)
	updateHeight(y)

	return y
}

// rotateLeft is the mirror image of rotateRight. z.right must not be nil.
func rotateLeft[K any](z *Node[K]) *Node[K] {
	y := z.right
	z.right = y.left
	y.left = z

	updateHeight(z)
	updateHeight(y)

	return y
}
