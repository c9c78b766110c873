/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"scriptviewer/internal/view"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSession(t, view.DimQuadro), Options{Format: FormatPDF}); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestWritePDFNoGroups(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testSession(t, view.DimPage), Options{Format: FormatPDF, Groups: []int{99}, PageSize: "Letter"})
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty pdf")
	}
}

func TestToFileCreatesDirectories(t *testing.T) {
	out := filepath.Join(t.TempDir(), "exports", "roteiro.pdf")
	if err := ToFile(out, testSession(t, view.DimUnidade), Options{Format: FormatForPath(out)}); err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	st, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Size() <= 0 {
		t.Fatalf("empty file: %s", out)
	}
}

func TestWriteNilSession(t *testing.T) {
	if err := Write(&bytes.Buffer{}, nil, Options{}); err == nil {
		t.Fatalf("expected error")
	}
}
