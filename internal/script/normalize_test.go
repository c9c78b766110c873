/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"encoding/json"
	"testing"
)

func raw(t *testing.T, s string) RawRecord {
	t.Helper()
	rec, perr := decodeObject([]byte(s))
	if perr != nil {
		t.Fatalf("decode %s: %v", s, perr)
	}
	return rec
}

func TestNormalizeDerivesTagNumbers(t *testing.T) {
	r := Normalize(raw(t, `{"type":"dialogue","tags":["x","p7","q3","u2"]}`), 4)
	if !r.Page.Is(7) || !r.Quadro.Is(3) || !r.Unidade.Is(2) {
		t.Fatalf("page/quadro/unidade = %v/%v/%v, want 7/3/2", r.Page, r.Quadro, r.Unidade)
	}
	if r.Seq != 4 {
		t.Fatalf("Seq = %d, want 4", r.Seq)
	}
	if r.Type != TypeDialogue {
		t.Fatalf("Type = %v, want dialogue", r.Type)
	}
}

func TestNormalizeExplicitPageWins(t *testing.T) {
	cases := []string{
		`{"page":2,"tags":["p9"]}`,
		`{"page":"2","tags":["p9"]}`,
		`{"tags":["p9"],"page":2.0}`,
	}
	for _, c := range cases {
		if r := Normalize(raw(t, c), 0); !r.Page.Is(2) {
			t.Errorf("%s: page = %v, want 2", c, r.Page)
		}
	}
}

func TestNormalizeMalformedPageFallsBackToTag(t *testing.T) {
	for _, c := range []string{
		`{"page":-1,"tags":["p5"]}`,
		`{"page":"two","tags":["p5"]}`,
		`{"page":null,"tags":["p5"]}`,
		`{"page":1.5,"tags":["p5"]}`,
	} {
		if r := Normalize(raw(t, c), 0); !r.Page.Is(5) {
			t.Errorf("%s: page = %v, want 5", c, r.Page)
		}
	}
}

func TestNormalizePageZeroIsValid(t *testing.T) {
	r := Normalize(raw(t, `{"page":0}`), 0)
	if !r.Page.Is(0) {
		t.Fatalf("page = %v, want 0", r.Page)
	}
	if r.Quadro.Valid || r.Unidade.Valid {
		t.Fatalf("quadro/unidade should be null, got %v/%v", r.Quadro, r.Unidade)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	r := Normalize(RawRecord{}, 0)
	if r.Type != TypeSection {
		t.Fatalf("Type = %v, want section", r.Type)
	}
	if r.Page.Valid || r.Quadro.Valid || r.Unidade.Valid {
		t.Fatalf("numeric fields should be null")
	}
	if r.Verb == nil || len(r.Verb) != 0 || r.Tags == nil || len(r.Tags) != 0 {
		t.Fatalf("Verb/Tags should be empty non-nil, got %#v / %#v", r.Verb, r.Tags)
	}
	if r.Text != "" || r.Character != "" || r.Obs != "" || r.Label != "" || r.Title != "" || r.Roman != "" {
		t.Fatalf("string fields should be empty: %+v", r)
	}
}

func TestNormalizeUnexpectedTypesDegrade(t *testing.T) {
	r := Normalize(raw(t, `{"type":"villain","text":{"a":1},"tags":"p3","verb":[1,"ri",null],"character":null}`), 0)
	if r.Type != TypeSection {
		t.Fatalf("Type = %v, want section", r.Type)
	}
	if r.Text != "" {
		t.Fatalf("Text = %q, want empty", r.Text)
	}
	if len(r.Tags) != 0 || r.Page.Valid {
		t.Fatalf("non-array tags should be ignored, got %v page %v", r.Tags, r.Page)
	}
	if len(r.Verb) != 2 || r.Verb[0] != "1" || r.Verb[1] != "ri" {
		t.Fatalf("Verb = %v, want [1 ri]", r.Verb)
	}
	if r.Character != "" {
		t.Fatalf("Character = %q, want empty", r.Character)
	}
}

func TestNormalizeVerbString(t *testing.T) {
	r := Normalize(raw(t, `{"verb":"grita"}`), 0)
	if len(r.Verb) != 1 || r.Verb[0] != "grita" {
		t.Fatalf("Verb = %v, want [grita]", r.Verb)
	}
}

func TestNormalizeIDKeepsScalarText(t *testing.T) {
	if r := Normalize(raw(t, `{"id":17}`), 0); r.ID != "17" {
		t.Fatalf("ID = %q, want 17", r.ID)
	}
	if r := Normalize(raw(t, `{"id":"a-1"}`), 0); r.ID != "a-1" {
		t.Fatalf("ID = %q, want a-1", r.ID)
	}
}

func TestTagNumber(t *testing.T) {
	cases := []struct {
		tags []string
		want NullInt
	}{
		{[]string{"P12"}, Int(12)},
		{[]string{"p", "px", "p1a", "p04"}, Int(4)},
		{[]string{"q1", "p2", "p3"}, Int(2)},
		{[]string{"p99999999999999999999999", "p8"}, Int(8)},
		{[]string{"page1"}, NullInt{}},
		{nil, NullInt{}},
	}
	for _, c := range cases {
		if got := TagNumber(c.tags, 'p'); got != c.want {
			t.Errorf("TagNumber(%v) = %v, want %v", c.tags, got, c.want)
		}
	}
}

func TestRecordJSONUsesSeqKey(t *testing.T) {
	b, err := json.Marshal(Record{Type: TypeStage, Page: Int(3), Seq: 9})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["__seq"] != float64(9) || m["type"] != "stage" || m["page"] != float64(3) || m["quadro"] != nil {
		t.Fatalf("unexpected JSON: %s", b)
	}
}

func TestIsDirection(t *testing.T) {
	for typ, want := range map[Type]bool{TypeSection: false, TypeDialogue: false, TypeStage: true, TypeAction: true} {
		if got := (Record{Type: typ}).IsDirection(); got != want {
			t.Errorf("%v.IsDirection() = %v, want %v", typ, got, want)
		}
	}
}
