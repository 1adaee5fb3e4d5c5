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

package main

import (
	"github.com/patrickmn/go-cache"
)

// NewLookupCache creates the cache that remembers search answers by
// canonical key.
func NewLookupCache(config CacheConfig) *cache.Cache {
	return cache.New(config.LookupTTL, config.CleanupInterval)
}

func CacheLookup(c *cache.Cache, key string, found bool) {
	c.Set(key, found, cache.DefaultExpiration)
}

// GetLookup returns the remembered answer for key; ok is false on a miss.
func GetLookup(c *cache.Cache, key string) (found bool, ok bool) {
	val, ok := c.Get(key)
	if !ok {
		return false, false
	}
	return val.(bool), true
}

// EvictLookup forgets key. Only an insert or delete of the key itself can
// change its answer, so nothing else needs to go.
func EvictLookup(c *cache.Cache, key string) {
	c.Delete(key)
}
