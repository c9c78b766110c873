/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scriptviewer/internal/config"
	"scriptviewer/internal/view"
)

func TestSessionOptionsFromConfig(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })
	cfg = config.Defaults()
	cfg.Document.Dimension = "unit"
	cfg.Document.Language = "en"
	cfg.Document.Title = "Rain"

	opts, err := sessionOptions()
	if err != nil {
		t.Fatalf("sessionOptions: %v", err)
	}
	if opts.Dimension != view.DimUnidade {
		t.Fatalf("Dimension = %v, want %v", opts.Dimension, view.DimUnidade)
	}
	if opts.Vocabulary.Unit != view.English.Unit {
		t.Fatalf("Vocabulary.Unit = %q, want %q", opts.Vocabulary.Unit, view.English.Unit)
	}
	if opts.Meta.Title != "Rain" {
		t.Fatalf("Meta.Title = %q, want %q", opts.Meta.Title, "Rain")
	}

	cfg.Document.Dimension = "act"
	if _, err := sessionOptions(); err == nil {
		t.Fatalf("expected error for unknown dimension")
	}
}

func TestFetchOptionsCountsRetries(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })
	cfg = config.Defaults()
	cfg.Fetch.Retries = 2
	if got := fetchOptions().Attempts; got != 3 {
		t.Fatalf("Attempts = %d, want 3", got)
	}
}

func TestShowPrintsGroup(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "roteiro.jsonl")
	lines := []string{
		`{"type":"section","label":"Unidade","title":"Chegada","tags":["p1","q1","u1"]}`,
		`{"type":"dialogue","character":"Odorico","text":"Povo (emocionado)","tags":["p1","q1","u1"]}`,
	}
	if err := os.WriteFile(src, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", cfgPath, "--source", src, "show", "--group", "1"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out.String(), "Odorico") {
		t.Fatalf("show output missing dialogue:\n%s", out.String())
	}
}
