/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal reader.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Next    key.Binding // next group
	Prev    key.Binding // previous group
	Page    key.Binding
	Quadro  key.Binding
	Unidade key.Binding
	Cycle   key.Binding // cycle grouping dimension
	Filter  key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap uses vim-style movement alongside arrows.
var DefaultKeyMap = KeyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
	Top:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Next:    key.NewBinding(key.WithKeys("n", "l", "right"), key.WithHelp("n/→", "next group")),
	Prev:    key.NewBinding(key.WithKeys("p", "h", "left"), key.WithHelp("p/←", "previous group")),
	Page:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "by page")),
	Quadro:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "by scene")),
	Unidade: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "by unit")),
	Cycle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next grouping")),
	Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp lists the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Cycle, k.Filter, k.Quit}
}
