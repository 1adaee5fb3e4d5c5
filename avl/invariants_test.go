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
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxHeight is the AVL height bound for n keys.
func maxHeight(n int) int {
	return int(math.Floor(1.44 * math.Log2(float64(n+2))))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 1234, 98765} {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		tree := New[int]()
		present := map[int]struct{}{}

		for op := range 2000 {
			key := rng.IntN(300)
			_, had := present[key]
			if rng.IntN(3) == 0 {
				require.Equal(t, had, tree.Delete(key), "seed %d op %d delete %d", seed, op, key)
				delete(present, key)
			} else {
				require.Equal(t, !had, tree.Insert(key), "seed %d op %d insert %d", seed, op, key)
				present[key] = struct{}{}
			}

			require.NoError(t, tree.Validate(), "seed %d op %d", seed, op)
			require.LessOrEqual(t, tree.Height(), maxHeight(tree.Len()), "seed %d op %d", seed, op)
		}
		assert.Equal(t, slices.Sorted(maps.Keys(present)), tree.InOrder(), "seed %d", seed)
	}
}

func TestAscendingInsertStaysShallow(t *testing.T) {
	tree := New[int]()
	for n := 1; n <= 1000; n++ {
		require.True(t, tree.Insert(n))
		require.LessOrEqual(t, tree.Height(), maxHeight(n), "after %d keys", n)
	}
	require.NoError(t, tree.Validate())
	assert.Equal(t, 1000, tree.Len())
}

func TestDescendingInsertStaysShallow(t *testing.T) {
	tree := New[int]()
	for n := 1000; n >= 1; n-- {
		tree.Insert(n)
	}
	require.NoError(t, tree.Validate())
	assert.LessOrEqual(t, tree.Height(), maxHeight(1000))
}

func TestDeleteAllInAnyOrderEmptiesTree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for round := range 20 {
		keys := rng.Perm(200)
		tree := New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}

		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for i, k := range keys {
			require.True(t, tree.Delete(k), "round %d key %d", round, k)
			require.False(t, tree.Search(k))
			if i%17 == 0 {
				require.NoError(t, tree.Validate())
			}
		}
		assert.True(t, tree.IsEmpty(), "round %d", round)
		assert.Nil(t, tree.Root())
		assert.Zero(t, tree.Len())
	}
}

func TestInOrderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	tree := New[float64]()
	want := map[float64]struct{}{}
	for range 500 {
		k := math.Round(rng.Float64()*1000) / 10
		tree.Insert(k)
		want[k] = struct{}{}
	}
	got := tree.InOrder()
	assert.Equal(t, slices.Sorted(maps.Keys(want)), got)
	assert.True(t, slices.IsSorted(got))
	assert.Len(t, slices.Compact(slices.Clone(got)), len(got), "no duplicates")
}

func TestValidateDetectsCorruption(t *testing.T) {
	build := func() *Tree[int] {
		tree := New[int]()
		for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
			tree.Insert(k)
		}
		return tree
	}

	tree := build()
	tree.root.left.key = 9
	assert.ErrorIs(t, tree.Validate(), ErrOrder)

	tree = build()
	tree.root.right.height = 5
	assert.ErrorIs(t, tree.Validate(), ErrHeight)

	tree = build()
	tree.root.right = nil
	tree.count = 4
	assert.ErrorIs(t, tree.Validate(), ErrBalance)

	tree = build()
	tree.count++
	assert.ErrorIs(t, tree.Validate(), ErrCount)
}

func FuzzTree(f *testing.F) {
	f.Add([]byte{10, 20, 30, 40, 50, 25, 0x80 | 10})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 0x81, 0x84, 0x87})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := New[byte]()
		present := map[byte]bool{}
		for _, op := range ops {
			key := op & 0x7f
			if op&0x80 != 0 {
				if tree.Delete(key) != present[key] {
					t.Fatalf("delete %d disagrees with reference", key)
				}
				delete(present, key)
			} else {
				if tree.Insert(key) == present[key] {
					t.Fatalf("insert %d disagrees with reference", key)
				}
				present[key] = true
			}
			if err := tree.Validate(); err != nil {
				t.Fatal(err)
			}
		}
		if got, want := tree.InOrder(), slices.Sorted(maps.Keys(present)); !slices.Equal(got, want) {
			t.Fatalf("in-order %v, want %v", got, want)
		}
	})
}
