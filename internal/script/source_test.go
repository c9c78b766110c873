/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

const sample = `{"type":"section","label":"Capa","page":0}
garbage
{"type":"dialogue","character":"ANA","text":"Olá","tags":["p1"]}
`

func TestLoadFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "roteiro.jsonl")
	if err := os.WriteFile(p, []byte(sample), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := Load(context.Background(), p, FetchOptions{})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(doc.Records) != 2 || len(doc.Dropped) != 1 || doc.Source != p {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestLoadNoSource(t *testing.T) {
	if _, err := Load(context.Background(), "  ", FetchOptions{}); !errors.Is(err, ErrNoSource) {
		t.Fatalf("err = %v, want ErrNoSource", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.jsonl"), FetchOptions{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	doc, err := Load(context.Background(), srv.URL+"/roteiro.jsonl", FetchOptions{Attempts: 3, Delay: time.Millisecond})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
	if len(doc.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(doc.Records))
	}
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, FetchOptions{Attempts: 5, Delay: time.Millisecond})
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestIsRemote(t *testing.T) {
	for src, want := range map[string]bool{
		"https://example.org/r.jsonl": true,
		"HTTP://x":                    true,
		"roteiro.jsonl":               false,
		"-":                           false,
	} {
		if got := IsRemote(src); got != want {
			t.Errorf("IsRemote(%q) = %v, want %v", src, got, want)
		}
	}
}
