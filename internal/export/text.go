/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"scriptviewer/internal/script"
	"scriptviewer/internal/view"
)

// NoCharacter stands in for a dialogue line without a speaker.
const NoCharacter = "—"

// PrintLine is the one-line print form of a dialogue record:
// "CHARACTER : verb, verb : text", with the verb part left out when there are none.
func PrintLine(r script.Record) string {
	who := strings.TrimSpace(r.Character)
	if who == "" {
		who = NoCharacter
	}
	var b strings.Builder
	b.WriteString(who)
	if verbs := Verbs(r); verbs != "" {
		b.WriteString(" : ")
		b.WriteString(verbs)
	}
	b.WriteString(" : ")
	b.WriteString(r.Text)
	return b.String()
}

// Verbs joins the non-empty verbs of r with ", ".
func Verbs(r script.Record) string {
	out := make([]string, 0, len(r.Verb))
	for _, v := range r.Verb {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ", ")
}

// Segment is a run of text; Emphasis marks a parenthetical.
type Segment struct {
	Text     string
	Emphasis bool
}

var parenthetical = regexp.MustCompile(`\((.+?)\)`)

// SplitEmphasis cuts s into plain and parenthetical runs. Parentheses stay in the text.
func SplitEmphasis(s string) []Segment {
	var out []Segment
	last := 0
	for _, m := range parenthetical.FindAllStringIndex(s, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: s[last:m[0]]})
		}
		out = append(out, Segment{Text: s[m[0]:m[1]], Emphasis: true})
		last = m[1]
	}
	if last < len(s) {
		out = append(out, Segment{Text: s[last:]})
	}
	return out
}

// EmphasisHTML escapes s and wraps parentheticals in <em>.
func EmphasisHTML(s string) string {
	var b strings.Builder
	for _, seg := range SplitEmphasis(s) {
		if seg.Emphasis {
			b.WriteString("<em>")
			b.WriteString(html.EscapeString(seg.Text))
			b.WriteString("</em>")
			continue
		}
		b.WriteString(html.EscapeString(seg.Text))
	}
	return b.String()
}

// BodyText is the text a record shows in the reading view.
func BodyText(r script.Record) string {
	switch r.Type {
	case script.TypeStage, script.TypeAction:
		if r.Text != "" {
			return r.Text
		}
		return r.Label
	case script.TypeSection, script.TypeDialogue:
		return r.Text
	}
	return r.Text
}

// WriteText renders the given groups as a plain-text print view.
func WriteText(w io.Writer, s *view.Session, opt Options) error {
	bw := bufio.NewWriter(w)
	voc := s.Vocabulary()
	for i, g := range selectGroups(s.Groups(), opt.Groups) {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "== %s ==\n", view.GroupLabel(s.Dimension(), g.Key, g.Members, voc))
		if g.Key == view.CoverKey {
			writeCoverText(bw, view.BuildCover(s.Document().Records, g.Members, s.Meta(), voc))
			continue
		}
		if s.Dimension() == view.DimUnidade {
			if t := view.UnitTitle(g.Members, voc); t != "" {
				fmt.Fprintln(bw, t)
			}
		}
		for _, r := range view.Filter(g.Members, opt.Query) {
			switch r.Type {
			case script.TypeDialogue:
				fmt.Fprintln(bw, PrintLine(r))
			case script.TypeStage, script.TypeAction:
				if t := BodyText(r); t != "" {
					fmt.Fprintf(bw, "    %s\n", t)
				}
			case script.TypeSection:
				if r.Text != "" {
					fmt.Fprintln(bw, r.Text)
				}
			}
		}
	}
	return bw.Flush()
}

func writeCoverText(w io.Writer, c view.Cover) {
	for _, line := range []string{c.Title, c.Author, c.WorkLine} {
		if line != "" {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.Heading)
	for _, name := range c.Characters {
		fmt.Fprintln(w, "  "+name)
	}
	if c.Action != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, c.Action)
	}
}
