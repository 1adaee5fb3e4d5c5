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

// Package avl implements an in-memory, height-balanced binary search tree.
//
// Every mutating operation descends recursively to the point of change and
// rebalances each ancestor on the way back up, so the tree height stays
// within 1.44*log2(n+2) and every operation runs in O(log n).
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must guard every call, including iteration, with a mutex.
//
// Keys must be ordered by a strict total order. New uses cmp.Compare, which
// satisfies this for every cmp.Ordered type (NaN sorts first). A comparator
// passed to NewFunc that is not a strict total order leaves the tree in an
// undefined state.
package avl
