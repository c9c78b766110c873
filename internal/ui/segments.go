//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"scriptviewer/internal/export"
	"scriptviewer/internal/script"
	"scriptviewer/internal/view"
)

var (
	inlinePlain  = widget.RichTextStyle{Inline: true}
	inlineItalic = widget.RichTextStyle{Inline: true, TextStyle: fyne.TextStyle{Italic: true}}
	inlineBold   = widget.RichTextStyle{Inline: true, TextStyle: fyne.TextStyle{Bold: true}}
	endParagraph = widget.RichTextStyleParagraph
)

// emphasized appends s as inline segments, parentheticals in italic, then ends the paragraph.
func emphasized(out []widget.RichTextSegment, s string, base widget.RichTextStyle) []widget.RichTextSegment {
	for _, seg := range export.SplitEmphasis(s) {
		style := base
		if seg.Emphasis {
			style.TextStyle.Italic = true
		}
		out = append(out, &widget.TextSegment{Text: seg.Text, Style: style})
	}
	return append(out, &widget.TextSegment{Style: endParagraph})
}

// segments renders one session view as rich text.
func segments(v view.View, voc view.Vocabulary) []widget.RichTextSegment {
	if !v.HasActive {
		return []widget.RichTextSegment{&widget.TextSegment{Text: voc.NothingFound, Style: widget.RichTextStyleEmphasis}}
	}
	out := []widget.RichTextSegment{&widget.TextSegment{Text: strings.ToUpper(v.Label), Style: widget.RichTextStyleSubHeading}}
	if c := v.Cover; c != nil {
		return append(out, coverSegments(*c)...)
	}
	if v.UnitTitle != "" {
		out = append(out, &widget.TextSegment{Text: v.UnitTitle, Style: widget.RichTextStyleHeading})
	}
	if v.Empty {
		return append(out, &widget.TextSegment{Text: v.Placeholder, Style: widget.RichTextStyleEmphasis})
	}
	for _, it := range v.Items {
		out = append(out, recordSegments(it.Record, voc)...)
	}
	return out
}

func recordSegments(r script.Record, voc view.Vocabulary) []widget.RichTextSegment {
	var out []widget.RichTextSegment
	switch r.Type {
	case script.TypeDialogue:
		who := strings.TrimSpace(r.Character)
		if who == "" {
			who = export.NoCharacter
		}
		out = append(out, &widget.TextSegment{Text: who + "  ", Style: inlineBold})
		out = emphasized(out, r.Text, inlinePlain)
		if verbs := export.Verbs(r); verbs != "" {
			out = append(out,
				&widget.TextSegment{Text: voc.Verb + " ", Style: inlineItalic},
				&widget.TextSegment{Text: verbs, Style: inlineBold},
				&widget.TextSegment{Style: endParagraph})
		}
		if r.Obs != "" {
			out = emphasized(out, r.Obs, inlineItalic)
		}
	case script.TypeStage, script.TypeAction:
		if t := export.BodyText(r); t != "" {
			out = emphasized(out, t, inlineItalic)
		}
	case script.TypeSection:
		if r.Text != "" {
			out = emphasized(out, r.Text, inlineBold)
		}
	}
	return out
}

func coverSegments(c view.Cover) []widget.RichTextSegment {
	var out []widget.RichTextSegment
	if c.Title != "" {
		out = append(out, &widget.TextSegment{Text: c.Title, Style: widget.RichTextStyleHeading})
	}
	if c.Author != "" {
		out = append(out, &widget.TextSegment{Text: c.Author, Style: widget.RichTextStyleParagraph})
	}
	out = append(out,
		&widget.TextSegment{Text: c.WorkLine, Style: widget.RichTextStyleParagraph},
		&widget.TextSegment{Text: c.Heading, Style: widget.RichTextStyleStrong},
		&widget.TextSegment{Style: endParagraph},
	)
	for _, name := range c.Characters {
		out = append(out, &widget.TextSegment{Text: name, Style: widget.RichTextStyleParagraph})
	}
	if c.Action != "" {
		out = emphasized(out, c.Action, inlinePlain)
	}
	return out
}
