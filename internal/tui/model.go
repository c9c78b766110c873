/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tui is a terminal reader for a script built on bubbletea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scriptviewer/internal/view"
)

const sidebarWidth = 22

// Model is the bubbletea model of the reader. It owns its Session.
type Model struct {
	sess   *view.Session
	keys   KeyMap
	styles Styles

	width  int
	height int

	current   view.View
	filtering bool
	input     string
	scroll    int
}

// New creates a reader over sess.
func New(sess *view.Session) Model {
	return Model{
		sess:    sess,
		keys:    DefaultKeyMap,
		styles:  DefaultStyles(),
		width:   100,
		height:  30,
		current: sess.View(),
		input:   sess.Query(),
	}
}

// Run starts the reader in the alternate screen until quit or ctx is done.
func Run(ctx context.Context, sess *view.Session) error {
	_, err := tea.NewProgram(New(sess), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Current returns the last rendered session view.
func (m Model) Current() view.View { return m.current }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampScroll()
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		if m.input != "" {
			m.input = ""
			m.applyFilter()
		} else {
			m.filtering = false
		}
	case msg.Type == tea.KeyEnter:
		m.filtering = false
	case msg.Type == tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
			m.applyFilter()
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if len(msg.Runes) == 0 {
			m.input += " "
		} else {
			m.input += string(msg.Runes)
		}
		m.applyFilter()
	}
	return m, nil
}

func (m *Model) applyFilter() {
	m.current = m.sess.Filter(m.input)
	m.scroll = 0
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Clear):
		if m.input != "" {
			m.input = ""
			m.applyFilter()
		}
	case key.Matches(msg, m.keys.Next):
		m.show(m.sess.Next())
	case key.Matches(msg, m.keys.Prev):
		m.show(m.sess.Prev())
	case key.Matches(msg, m.keys.Page):
		m.show(m.sess.SetDimension(view.DimPage))
	case key.Matches(msg, m.keys.Quadro):
		m.show(m.sess.SetDimension(view.DimQuadro))
	case key.Matches(msg, m.keys.Unidade):
		m.show(m.sess.SetDimension(view.DimUnidade))
	case key.Matches(msg, m.keys.Cycle):
		next := view.Dimensions[(int(m.sess.Dimension())+1)%len(view.Dimensions)]
		m.show(m.sess.SetDimension(next))
	case key.Matches(msg, m.keys.Down):
		m.scroll++
		m.clampScroll()
	case key.Matches(msg, m.keys.Up):
		m.scroll--
		m.clampScroll()
	case key.Matches(msg, m.keys.Top):
		m.scroll = 0
	case key.Matches(msg, m.keys.Bottom):
		m.scroll = len(m.contentLines())
		m.clampScroll()
	}
	return m, nil
}

func (m *Model) show(v view.View) {
	m.current = v
	m.scroll = 0
}

func (m Model) bodyHeight() int {
	if h := m.height - 2; h > 1 {
		return h
	}
	return 1
}

func (m Model) contentLines() []string {
	return m.styles.contentLines(m.current, m.sess.Vocabulary())
}

func (m *Model) clampScroll() {
	maxScroll := len(m.contentLines()) - m.bodyHeight()
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m Model) View() string {
	h := m.bodyHeight()
	side := m.styles.sidebarLines(m.current, sidebarWidth-2)
	if active := m.activeIndex(); active >= h {
		side = side[active-h+1:]
	}
	if len(side) > h {
		side = side[:h]
	}
	sidebar := m.styles.Sidebar.Width(sidebarWidth).Height(h).Render(strings.Join(side, "\n"))

	lines := m.contentLines()
	if m.scroll < len(lines) {
		lines = lines[m.scroll:]
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	contentWidth := m.width - sidebarWidth - 3
	if contentWidth < 20 {
		contentWidth = 20
	}
	content := lipgloss.NewStyle().Width(contentWidth).MaxHeight(h).PaddingLeft(1).Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content),
		m.statusLine(),
	)
}

func (m Model) activeIndex() int {
	for i, g := range m.current.Groups {
		if g.Active {
			return i
		}
	}
	return 0
}

func (m Model) statusLine() string {
	if m.filtering {
		return m.styles.FilterInput.Render("/ " + m.input + "▏")
	}
	parts := []string{m.current.Dimension.String()}
	if m.input != "" {
		parts = append(parts, "filter: "+m.input)
	}
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}
