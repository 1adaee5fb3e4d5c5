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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// explorerModel is the bubbletea state of the interactive explorer. Every
// command typed into the prompt runs through the script interpreter.
type explorerModel struct {
	session *Session

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model

	output    string
	status    string
	statusErr bool
	showHelp  bool

	history    []string
	historyIdx int

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

func newExplorerModel(s *Session) explorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30"
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	m := explorerModel{
		session:  s,
		input:    ti,
		treeView: viewport.New(0, 0),
		helpView: viewport.New(0, 0),
		status:   "type a command, f1 for help",
		styles:   NewStyles(),
	}
	m.refreshTree()
	return m
}

func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "ctrl+y":
			m.copyKeys()
			return m, nil
		case "f1":
			m.toggleHelp()
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *explorerModel) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)

	var buf bytes.Buffer
	if err := NewInterpreter(m.session, &buf).Exec(line); err != nil {
		m.status = err.Error()
		m.statusErr = true
	} else {
		m.status = fmt.Sprintf("%d keys, height %d", m.session.Keys().Len(), m.session.Keys().Height())
		m.statusErr = false
	}
	m.output = buf.String()
	m.refreshTree()
}

// recall walks through previously executed lines.
func (m *explorerModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIdx = max(0, min(len(m.history), m.historyIdx+step))
	if m.historyIdx == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m *explorerModel) copyKeys() {
	keys := m.session.Keys().InOrder()
	if err := clipboard.WriteAll(strings.Join(keys, "\n")); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("📋 copied %d keys to clipboard", len(keys))
	m.statusErr = false
}

func (m *explorerModel) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		return
	}
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	content := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.helpView.SetContent(content)
	m.helpView.GotoTop()
}

func (m *explorerModel) refreshTree() {
	var buf bytes.Buffer
	if err := m.session.Render(&buf); err != nil {
		buf.Reset()
		buf.WriteString(err.Error())
	}
	m.treeView.SetContent(buf.String())
}

func (m *explorerModel) updateLayout() {
	paneHeight := max(m.height-8, 3)
	treeWidth := max(m.width*6/10-4, 10)

	m.treeView.Width = treeWidth
	m.treeView.Height = paneHeight
	m.helpView.Width = max(m.width-4, 10)
	m.helpView.Height = paneHeight
	m.input.Width = max(m.width-8, 10)
}

func (m explorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	var main string
	if m.showHelp {
		main = m.styles.BorderFocused.
			Width(m.width - 2).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Title.Render(" 📖 Help "),
				m.helpView.View()))
	} else {
		treeWidth := m.treeView.Width + 2
		outWidth := max(m.width-treeWidth-6, 10)
		treeBox := m.styles.BorderFocused.
			Width(treeWidth).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Title.Render(" 🌳 Tree "),
				m.treeView.View()))
		outBox := m.styles.BorderBlurred.
			Width(outWidth).
			Height(m.treeView.Height + 1).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Title.Render(" Output "),
				m.output))
		main = lipgloss.JoinHorizontal(lipgloss.Top, treeBox, outBox)
	}

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.styles.InputPrompt.Render(m.input.View()),
		status,
		m.renderHelpFooter(),
	)
}

func (m explorerModel) renderHelpFooter() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdn", "ctrl+y", "f1", "esc"}
	descs := []string{"run", "history", "scroll", "copy keys", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}
	return strings.Join(helpEntries, "  •  ")
}

// runExplorer starts the explorer and blocks until the user quits.
func runExplorer(s *Session) error {
	InitializeColors()

	program := tea.NewProgram(
		newExplorerModel(s),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
