/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"scriptviewer/internal/export"
	"scriptviewer/internal/script"
	"scriptviewer/internal/view"
)

// emphasize renders s with parentheticals in the emphasis style.
func (st Styles) emphasize(s string) string {
	var b strings.Builder
	for _, seg := range export.SplitEmphasis(s) {
		if seg.Emphasis {
			b.WriteString(st.Emphasis.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// sidebarLines renders the group list, one row per group, truncated to width.
func (st Styles) sidebarLines(v view.View, width int) []string {
	lines := make([]string, 0, len(v.Groups))
	for _, g := range v.Groups {
		label := g.Label
		if g.DialogueCount > 0 {
			label += " " + st.Count.Render(strconv.Itoa(g.DialogueCount))
		}
		label = ansi.Truncate(label, width, "…")
		if g.Active {
			lines = append(lines, st.ActiveGroup.Render("▸ ")+st.ActiveGroup.Render(label))
			continue
		}
		lines = append(lines, "  "+st.Group.Render(label))
	}
	return lines
}

// contentLines renders the active group of v.
func (st Styles) contentLines(v view.View, voc view.Vocabulary) []string {
	var out []string
	if !v.HasActive {
		return []string{st.Placeholder.Render(voc.NothingFound)}
	}
	out = append(out, st.Header.Render("── "+strings.ToUpper(v.Label)+" ──"), "")
	if c := v.Cover; c != nil {
		return append(out, st.coverLines(*c)...)
	}
	if v.UnitTitle != "" {
		out = append(out, st.UnitTitle.Render(v.UnitTitle), "")
	}
	if v.Empty {
		return append(out, st.Placeholder.Render(v.Placeholder))
	}
	for _, it := range v.Items {
		out = append(out, st.itemLines(it.Record)...)
	}
	return out
}

func (st Styles) itemLines(r script.Record) []string {
	switch r.Type {
	case script.TypeDialogue:
		who := strings.TrimSpace(r.Character)
		if who == "" {
			who = export.NoCharacter
		}
		line := st.Character.Render(who)
		if verbs := export.Verbs(r); verbs != "" {
			line += " " + st.Verb.Render("("+verbs+")")
		}
		lines := []string{line + "  " + st.emphasize(r.Text)}
		if r.Obs != "" {
			lines = append(lines, "    "+st.Verb.Render(r.Obs))
		}
		return append(lines, "")
	case script.TypeStage, script.TypeAction:
		if t := export.BodyText(r); t != "" {
			return []string{st.Direction.Render(t), ""}
		}
	case script.TypeSection:
		if r.Text != "" {
			return []string{st.emphasize(r.Text), ""}
		}
	}
	return nil
}

func (st Styles) coverLines(c view.Cover) []string {
	var out []string
	if c.Title != "" {
		out = append(out, st.CoverTitle.Render(c.Title))
	}
	if c.Author != "" {
		out = append(out, c.Author)
	}
	out = append(out, c.WorkLine, "", st.Header.Render(c.Heading))
	for _, name := range c.Characters {
		out = append(out, "  "+name)
	}
	if c.Action != "" {
		out = append(out, "", st.emphasize(c.Action))
	}
	return out
}

// Render returns the active group of v as styled text for non-interactive output.
func Render(v view.View, voc view.Vocabulary) string {
	return strings.Join(DefaultStyles().contentLines(v, voc), "\n")
}

// RenderGroups returns the group list of v, one group per line.
func RenderGroups(v view.View) string {
	return strings.Join(DefaultStyles().sidebarLines(v, 60), "\n")
}
