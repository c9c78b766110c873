/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the reader.
type Styles struct {
	Sidebar     lipgloss.Style
	Group       lipgloss.Style
	ActiveGroup lipgloss.Style
	Count       lipgloss.Style
	Header      lipgloss.Style
	UnitTitle   lipgloss.Style
	Character   lipgloss.Style
	Verb        lipgloss.Style
	Direction   lipgloss.Style
	Emphasis    lipgloss.Style
	Placeholder lipgloss.Style
	CoverTitle  lipgloss.Style
	Status      lipgloss.Style
	FilterInput lipgloss.Style
}

// DefaultStyles works on dark and light terminals.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#8a8a8a", Dark: "#6c6c6c"}
	accent := lipgloss.AdaptiveColor{Light: "#1f5fbf", Dark: "#7aa2f7"}
	return Styles{
		Sidebar:     lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(subtle).PaddingRight(1),
		Group:       lipgloss.NewStyle(),
		ActiveGroup: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Count:       lipgloss.NewStyle().Foreground(subtle),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(subtle),
		UnitTitle:   lipgloss.NewStyle().Bold(true),
		Character:   lipgloss.NewStyle().Bold(true),
		Verb:        lipgloss.NewStyle().Italic(true).Foreground(subtle),
		Direction:   lipgloss.NewStyle().Italic(true).PaddingLeft(4),
		Emphasis:    lipgloss.NewStyle().Italic(true),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(subtle),
		CoverTitle:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Status:      lipgloss.NewStyle().Foreground(subtle),
		FilterInput: lipgloss.NewStyle().Foreground(accent),
	}
}
