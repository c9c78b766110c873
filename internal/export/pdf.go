/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"scriptviewer/internal/script"
	"scriptviewer/internal/view"
)

const (
	bodySize   = 11.0
	lineHeight = 15.0
	margin     = 56.0
)

// pdfWriter keeps the document and the UTF-8 to cp1252 translator of the core fonts.
type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// WritePDF renders the selected groups of the session as a print-ready PDF, one
// group per page. Built-in Helvetica keeps text vector without embedding.
func WritePDF(w io.Writer, s *view.Session, opt Options) error {
	size := opt.PageSize
	if size == "" {
		size = "A4"
	}
	pdf := gofpdf.New("P", "pt", size, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pw := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	meta := s.Meta()
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}

	voc := s.Vocabulary()
	groups := selectGroups(s.Groups(), opt.Groups)
	if len(groups) == 0 {
		pdf.AddPage()
		pw.font("", bodySize)
		pw.flow(voc.NothingFound)
	}
	for _, g := range groups {
		pdf.AddPage()
		pw.header(view.GroupLabel(s.Dimension(), g.Key, g.Members, voc))
		if g.Key == view.CoverKey {
			pw.cover(view.BuildCover(s.Document().Records, g.Members, meta, voc))
			continue
		}
		if s.Dimension() == view.DimUnidade {
			if t := view.UnitTitle(g.Members, voc); t != "" {
				pw.font("B", 14)
				pdf.CellFormat(0, 20, pw.tr(t), "", 1, "C", false, 0, "")
				pdf.Ln(6)
			}
		}
		members := view.Filter(g.Members, opt.Query)
		if len(members) == 0 {
			pw.font("I", bodySize)
			pw.flow(voc.NothingFound)
			continue
		}
		for _, r := range members {
			pw.record(r)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (pw *pdfWriter) font(style string, size float64) {
	pw.pdf.SetFont("Helvetica", style, size)
}

func (pw *pdfWriter) header(label string) {
	pw.font("B", 9)
	pw.pdf.SetTextColor(110, 110, 110)
	pw.pdf.CellFormat(0, 14, pw.tr(strings.ToUpper(label)), "B", 1, "C", false, 0, "")
	pw.pdf.SetTextColor(0, 0, 0)
	pw.pdf.Ln(10)
}

// flow writes s with the current font and ends the paragraph.
func (pw *pdfWriter) flow(s string) {
	pw.pdf.Write(lineHeight, pw.tr(s))
	pw.pdf.Ln(lineHeight)
}

// emphasized writes s, switching to italic for parentheticals. base is the regular style.
func (pw *pdfWriter) emphasized(s, base string) {
	for _, seg := range SplitEmphasis(s) {
		style := base
		if seg.Emphasis && !strings.Contains(base, "I") {
			style += "I"
		}
		pw.font(style, bodySize)
		pw.pdf.Write(lineHeight, pw.tr(seg.Text))
	}
}

func (pw *pdfWriter) record(r script.Record) {
	switch r.Type {
	case script.TypeDialogue:
		who := strings.TrimSpace(r.Character)
		if who == "" {
			who = NoCharacter
		}
		pw.font("B", bodySize)
		pw.pdf.Write(lineHeight, pw.tr(who))
		if verbs := Verbs(r); verbs != "" {
			pw.font("I", bodySize)
			pw.pdf.Write(lineHeight, pw.tr(" : "+verbs))
		}
		pw.font("", bodySize)
		pw.pdf.Write(lineHeight, " : ")
		pw.emphasized(r.Text, "")
	case script.TypeStage, script.TypeAction:
		t := BodyText(r)
		if t == "" {
			return
		}
		left, _, _, _ := pw.pdf.GetMargins()
		pw.pdf.SetLeftMargin(left + 24)
		pw.pdf.SetX(left + 24)
		pw.emphasized(t, "I")
		pw.pdf.SetLeftMargin(left)
	case script.TypeSection:
		if r.Text == "" {
			return
		}
		pw.emphasized(r.Text, "B")
	}
	pw.pdf.Ln(lineHeight + 4)
}

func (pw *pdfWriter) cover(c view.Cover) {
	pdf := pw.pdf
	pdf.Ln(80)
	if c.Title != "" {
		pw.font("B", 24)
		pdf.CellFormat(0, 30, pw.tr(c.Title), "", 1, "C", false, 0, "")
	}
	if c.Author != "" {
		pw.font("", 12)
		pdf.CellFormat(0, 18, pw.tr(c.Author), "", 1, "C", false, 0, "")
	}
	pw.font("", 10)
	pdf.CellFormat(0, 18, pw.tr(c.WorkLine), "", 1, "C", false, 0, "")
	pdf.Ln(30)
	pw.font("B", 11)
	pdf.CellFormat(0, 16, pw.tr(c.Heading), "", 1, "L", false, 0, "")
	pw.font("", 11)
	for _, name := range c.Characters {
		pdf.CellFormat(0, 15, pw.tr(name), "", 1, "L", false, 0, "")
	}
	if c.Action != "" {
		pdf.Ln(20)
		pw.emphasized(c.Action, "")
		pdf.Ln(lineHeight)
	}
}
