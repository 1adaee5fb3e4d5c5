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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeys(t *testing.T) {
	input := `# fixtures
10
  20

# trailing comment
30  
10
`
	keys, err := readKeys(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "30", "10"}, keys)

	keys, err = readKeys(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLoadKeys(t *testing.T) {
	s := newTestSession(t, keyTypeInt)

	result, err := loadKeys(s, []string{"5", "3", "8", "3", "1"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Read: 5, Inserted: 4, Duplicates: 1}, result)
	assert.Equal(t, []string{"1", "3", "5", "8"}, s.Keys().InOrder())
	require.NoError(t, s.Check())
}

func TestLoadKeysProgress(t *testing.T) {
	var progress bytes.Buffer
	_, err := loadKeys(newTestSession(t, keyTypeInt), []string{"1", "2"}, &progress)
	require.NoError(t, err)
	assert.Contains(t, progress.String(), "Loading keys")
}

func TestLoadKeysBadKey(t *testing.T) {
	s := newTestSession(t, keyTypeInt)

	result, err := loadKeys(s, []string{"1", "2", "three", "4"}, nil)
	require.ErrorIs(t, err, errBadKey)
	assert.Contains(t, err.Error(), "key 3")
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, s.Keys().Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("pear\napple\n# skip\nfig\n"), 0600))

	s := newTestSession(t, keyTypeString)
	result, err := loadFile(s, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, []string{"apple", "fig", "pear"}, s.Keys().InOrder())

	_, err = loadFile(s, filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorContains(t, err, "not found")
}
