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
	"os"
	"path/filepath"
	"strings"

	"scriptviewer/internal/view"
)

// Format is an export output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

// Options controls an export run.
//
// Groups selects group keys under the session's dimension; empty means all groups.
// Query applies the content filter to every exported group, as in the reading view.
// PageSize is a gofpdf size name ("A4", "Letter", "A5"); PDF only.
type Options struct {
	Format   Format
	Groups   []int
	Query    string
	PageSize string
}

// ParseFormat accepts "pdf" and "txt" (or "text"). Empty means pdf.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "txt", "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format: %s", s)
}

// FormatForPath guesses the format from a file extension, defaulting to pdf.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return FormatText
	}
	return FormatPDF
}

// Write renders the session's current grouping in opt.Format.
func Write(w io.Writer, s *view.Session, opt Options) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}
	switch opt.Format {
	case FormatText:
		return WriteText(w, s, opt)
	case FormatPDF, "":
		return WritePDF(w, s, opt)
	}
	return fmt.Errorf("unknown format: %s", opt.Format)
}

// ToFile writes an export to outPath, creating its directory.
func ToFile(outPath string, s *view.Session, opt Options) error {
	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure out dir: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := Write(f, s, opt); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// selectGroups keeps the groups whose key is listed; no keys keeps all.
func selectGroups(all view.Groups, keys []int) view.Groups {
	if len(keys) == 0 {
		return all
	}
	out := make(view.Groups, 0, len(keys))
	for _, k := range keys {
		if g, ok := all.Lookup(k); ok {
			out = append(out, g)
		}
	}
	return out
}
