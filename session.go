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
	"io"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/willf/bloom"
)

// SessionStats counts what a session did since it was created.
type SessionStats struct {
	Inserted    int
	Duplicates  int
	Deleted     int
	Missing     int
	Searches    int
	FilterSkips int // searches answered by the bloom filter alone
	CacheHits   int // searches answered by the lookup cache
}

// Session is a keyspace fronted by a bloom filter and a lookup cache.
// A session is used from a single goroutine.
type Session struct {
	keys    Keyspace
	filter  *bloom.BloomFilter
	lookups *cache.Cache
	log     zerolog.Logger
	stats   SessionStats
}

func NewSession(config *Config, log zerolog.Logger) (*Session, error) {
	keys, err := newKeyspace(config.Tree.KeyType)
	if err != nil {
		return nil, err
	}
	return &Session{
		keys:    keys,
		filter:  bloom.New(config.Filter.BloomSize, config.Filter.BloomHashes),
		lookups: NewLookupCache(config.Cache),
		log:     log.With().Str("key_type", keys.Kind()).Logger(),
	}, nil
}

func (s *Session) Keys() Keyspace {
	return s.keys
}

func (s *Session) Stats() SessionStats {
	return s.stats
}

func (s *Session) Insert(raw string) (bool, error) {
	key, err := s.keys.Canonical(raw)
	if err != nil {
		return false, err
	}
	inserted, err := s.keys.Insert(key)
	if err != nil {
		return false, err
	}

	if inserted {
		s.stats.Inserted++
		s.filter.AddString(key)
		EvictLookup(s.lookups, key)
	} else {
		s.stats.Duplicates++
	}
	s.log.Debug().Str("key", key).Bool("inserted", inserted).
		Int("len", s.keys.Len()).Int("height", s.keys.Height()).Msg("insert")
	return inserted, nil
}

// Delete removes a key. The bloom filter cannot forget the key; a later
// search for it falls through to the tree.
func (s *Session) Delete(raw string) (bool, error) {
	key, err := s.keys.Canonical(raw)
	if err != nil {
		return false, err
	}
	deleted, err := s.keys.Delete(key)
	if err != nil {
		return false, err
	}

	if deleted {
		s.stats.Deleted++
		EvictLookup(s.lookups, key)
	} else {
		s.stats.Missing++
	}
	s.log.Debug().Str("key", key).Bool("deleted", deleted).
		Int("len", s.keys.Len()).Int("height", s.keys.Height()).Msg("delete")
	return deleted, nil
}

func (s *Session) Search(raw string) (bool, error) {
	key, err := s.keys.Canonical(raw)
	if err != nil {
		return false, err
	}
	s.stats.Searches++

	if found, ok := GetLookup(s.lookups, key); ok {
		s.stats.CacheHits++
		return found, nil
	}
	if !s.filter.TestString(key) {
		s.stats.FilterSkips++
		return false, nil
	}

	found, err := s.keys.Search(key)
	if err != nil {
		return false, err
	}
	CacheLookup(s.lookups, key, found)
	return found, nil
}

func (s *Session) Clear() {
	s.keys.Clear()
	s.filter.ClearAll()
	s.lookups.Flush()
	s.log.Debug().Msg("clear")
}

// Check validates the tree and logs the outcome.
func (s *Session) Check() error {
	if err := s.keys.Check(); err != nil {
		s.log.Error().Err(err).Msg("tree check failed")
		return err
	}
	s.log.Debug().Int("len", s.keys.Len()).Int("height", s.keys.Height()).Msg("tree check passed")
	return nil
}

func (s *Session) Render(w io.Writer) error {
	return s.keys.Render(w)
}
