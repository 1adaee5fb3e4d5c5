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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a config path inside a temp dir so
// the user's own config file is never read.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root, _ := newRootCmd(&out, &errOut)
	configPath := filepath.Join(t.TempDir(), configFileName)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "[30 20 10 25 40 50]\n")
	assert.Contains(t, out, "[30 20 25 40 50]\n")
	assert.Contains(t, out, "[20 25 30 40 50]\n")
	assert.Contains(t, out, "ok\n")
}

func TestDemoCommandIgnoresKeyType(t *testing.T) {
	out, err := execute(t, "--key-type", "string", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "[30 20 25 40 50]\n")
}

func TestRunCommand(t *testing.T) {
	script := filepath.Join(t.TempDir(), "keys.tree")
	require.NoError(t, os.WriteFile(script, []byte("insert b a c\ninorder\n"), 0600))

	out, err := execute(t, "--key-type", "string", "run", script)
	require.NoError(t, err)
	assert.Contains(t, out, "[a b c]\n")

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "nope.tree"))
	assert.ErrorContains(t, err, "not found")
}

func TestLoadCommand(t *testing.T) {
	keys := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(keys, []byte("3\n1\n2\n1\n"), 0600))

	out, err := execute(t, "load", keys, "--quiet", "--inorder")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3]\nok\n", out)
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, "--key-type", "uuid", "demo")
	assert.ErrorIs(t, err, errConfig)

	_, err = execute(t, "--log-level", "loud", "version")
	assert.ErrorIs(t, err, errConfig)

	_, err = execute(t, "load")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)

	var out, errOut bytes.Buffer
	root, _ := newRootCmd(&out, &errOut)
	root.SetArgs([]string{"--config", path, "settings"})
	require.NoError(t, root.Execute())

	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "key_type: int")
}
