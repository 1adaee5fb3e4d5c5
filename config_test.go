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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ordtree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
tree:
  key_type: string
filter:
  bloom_size: 1024
cache:
  lookup_ttl: 90s
log:
  level: debug
  console: false
`)
	config, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, keyTypeString, config.Tree.KeyType)
	assert.Equal(t, uint(1024), config.Filter.BloomSize)
	assert.Equal(t, defaultConfig.Filter.BloomHashes, config.Filter.BloomHashes)
	assert.Equal(t, 90*time.Second, config.Cache.LookupTTL)
	assert.Equal(t, "debug", config.Log.Level)
	assert.False(t, config.Log.Console)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "tree:\n  key_type: string\n")

	t.Setenv("ORDTREE_TREE_KEY_TYPE", "float")
	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, keyTypeFloat, config.Tree.KeyType, "environment beats the file")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("key-type", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--key-type=int"}))

	config, err = LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, keyTypeInt, config.Tree.KeyType, "flags beat the environment")
	assert.Equal(t, defaultConfig.Log.Level, config.Log.Level, "unset flags change nothing")
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := map[string]string{
		"key type":   "tree:\n  key_type: uuid\n",
		"bloom size": "filter:\n  bloom_size: 0\n",
		"ttl":        "cache:\n  lookup_ttl: 0s\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content), nil)
			assert.ErrorIs(t, err, errConfig)
		})
	}

	_, err := LoadConfig(writeConfig(t, "tree: [unterminated\n"), nil)
	assert.Error(t, err)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ordtree.yaml")

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path, nil))
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "key_type: int")

	config, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)

	out.Reset()
	require.NoError(t, displaySettings(&out, path, nil))
	assert.NotContains(t, out.String(), "newly created")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("key", "7").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"key":"7"`)

	_, err = newLogger(LogConfig{Level: "loud"}, &buf)
	assert.ErrorIs(t, err, errConfig)
}
