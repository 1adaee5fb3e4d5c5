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
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(t *testing.T, m explorerModel, line string) explorerModel {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	em, ok := next.(explorerModel)
	require.True(t, ok)
	return em
}

func TestExplorerExecutesCommands(t *testing.T) {
	s := newTestSession(t, keyTypeInt)
	m := newExplorerModel(s)

	m = typeLine(t, m, "insert 1 2 3")
	assert.Equal(t, 3, s.Keys().Len())
	assert.Contains(t, m.output, "inserted 3")
	assert.Equal(t, "3 keys, height 2", m.status)
	assert.False(t, m.statusErr)
	assert.Empty(t, m.input.Value())

	m = typeLine(t, m, "frobnicate")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "unknown command")

	m = typeLine(t, m, "   ")
	assert.Len(t, m.history, 2, "blank lines are not recorded")
}

func TestExplorerHistoryRecall(t *testing.T) {
	m := newExplorerModel(newTestSession(t, keyTypeInt))
	m = typeLine(t, m, "insert 4")
	m = typeLine(t, m, "preorder")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(explorerModel)
	assert.Equal(t, "preorder", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(explorerModel)
	assert.Equal(t, "insert 4", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(explorerModel)
	assert.Equal(t, "insert 4", m.input.Value(), "recall stops at the oldest line")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(explorerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(explorerModel)
	assert.Empty(t, m.input.Value())
}

func TestExplorerView(t *testing.T) {
	m := newExplorerModel(newTestSession(t, keyTypeInt))
	assert.Equal(t, "Initializing...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(explorerModel)
	m = typeLine(t, m, "insert 20 10 30")

	view := m.View()
	assert.Contains(t, view, "Tree")
	assert.Contains(t, view, "Output")
	assert.Contains(t, view, "inserted 30")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(explorerModel)
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestExplorerQuit(t *testing.T) {
	m := newExplorerModel(newTestSession(t, keyTypeInt))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
