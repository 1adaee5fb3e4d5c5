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
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type RotationCounts struct {
	LeftLeft   int `yaml:"left_left"`
	LeftRight  int `yaml:"left_right"`
	RightRight int `yaml:"right_right"`
	RightLeft  int `yaml:"right_left"`
}

// Snapshot is a point-in-time report of a session's tree.
type Snapshot struct {
	KeyType   string         `yaml:"key_type"`
	Len       int            `yaml:"len"`
	Height    int            `yaml:"height"`
	Rotations RotationCounts `yaml:"rotations"`
	InOrder   []string       `yaml:"in_order"`
	PreOrder  []string       `yaml:"pre_order"`
}

func (s *Session) Snapshot() Snapshot {
	r := s.keys.Rotations()
	return Snapshot{
		KeyType: s.keys.Kind(),
		Len:     s.keys.Len(),
		Height:  s.keys.Height(),
		Rotations: RotationCounts{
			LeftLeft:   r.LeftLeft,
			LeftRight:  r.LeftRight,
			RightRight: r.RightRight,
			RightLeft:  r.RightLeft,
		},
		InOrder:  s.keys.InOrder(),
		PreOrder: s.keys.PreOrder(),
	}
}

func writeSnapshot(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}
