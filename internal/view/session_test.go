/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package view

import (
	"errors"
	"testing"

	"scriptviewer/internal/script"
)

const sessionScript = `{"type":"section","label":"Ação","text":"Sucupira","page":0}
{"type":"section","label":"Unidade","title":"A Chegada","tags":["p1","q1","u1"]}
{"type":"dialogue","character":"ODORICO","text":"Povo!","verb":"discursa","tags":["p1","q1","u1"]}
{"type":"stage","text":"Pausa. (Aplausos)","tags":["p2","q1","u1"]}
{"type":"dialogue","character":"DIRCEU","text":"Coronel!","verb":["hesita"],"tags":["p3","q2","u2"]}
{"type":"dialogue","character":"ZECA","text":"Sem quadro","tags":["p4"]}`

func newTestSession(t *testing.T, d Dimension) *Session {
	t.Helper()
	recs, dropped := script.ParseString(sessionScript)
	if len(dropped) != 0 {
		t.Fatalf("dropped: %v", dropped)
	}
	return NewSession(script.NewDocument("test", recs), Options{Dimension: d, Vocabulary: Portuguese, Meta: Meta{Title: "O Bem-Amado"}})
}

func TestSessionStartsOnFirstGroup(t *testing.T) {
	s := newTestSession(t, DimPage)
	v := s.View()
	if !v.HasActive || v.ActiveKey != 0 || v.Label != "Capa" || v.Cover == nil {
		t.Fatalf("initial view = %+v", v)
	}
	if v.Cover.Action != "Ação: Sucupira" || v.Cover.SceneCount != 2 {
		t.Fatalf("cover = %+v", v.Cover)
	}
	if len(v.Groups) != 5 || v.Groups[1].Label != "Página 1" || v.Groups[1].DialogueCount != 1 {
		t.Fatalf("groups = %+v", v.Groups)
	}
	if v.HasPrev || !v.HasNext {
		t.Fatalf("prev/next = %v/%v", v.HasPrev, v.HasNext)
	}
}

func TestSessionSetDimensionKeepsOrResetsKey(t *testing.T) {
	s := newTestSession(t, DimPage)
	if _, err := s.ActivateGroup(2); err != nil {
		t.Fatalf("ActivateGroup(2): %v", err)
	}
	v := s.SetDimension(DimQuadro)
	if v.ActiveKey != 2 || v.Label != "Quadro 2" {
		t.Fatalf("key 2 should survive, got %d %q", v.ActiveKey, v.Label)
	}
	if _, err := s.ActivateGroup(1); err != nil {
		t.Fatalf("ActivateGroup(1): %v", err)
	}
	s.SetDimension(DimPage)
	if _, err := s.ActivateGroup(4); err != nil {
		t.Fatalf("ActivateGroup(4): %v", err)
	}
	v = s.SetDimension(DimUnidade)
	if v.ActiveKey != 0 || v.Dimension != DimUnidade {
		t.Fatalf("missing key should fall back to first, got %d", v.ActiveKey)
	}
}

func TestSessionActivateUnknownGroup(t *testing.T) {
	s := newTestSession(t, DimUnidade)
	v, err := s.ActivateGroup(9)
	if !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("err = %v, want ErrUnknownGroup", err)
	}
	if v.ActiveKey != 0 {
		t.Fatalf("active key changed to %d", v.ActiveKey)
	}
}

func TestSessionUnitView(t *testing.T) {
	s := newTestSession(t, DimUnidade)
	v, err := s.ActivateGroup(1)
	if err != nil {
		t.Fatalf("ActivateGroup: %v", err)
	}
	if v.Label != "Unidade I" || v.UnitTitle != "A Chegada" {
		t.Fatalf("label/title = %q / %q", v.Label, v.UnitTitle)
	}
	if len(v.Items) != 3 || v.Items[0].Seq != 1 || v.Items[2].Seq != 3 {
		t.Fatalf("items = %+v", v.Items)
	}
}

func TestSessionFilter(t *testing.T) {
	s := newTestSession(t, DimQuadro)
	if _, err := s.ActivateGroup(1); err != nil {
		t.Fatalf("ActivateGroup: %v", err)
	}
	v := s.Filter("DISCURSA")
	if len(v.Items) != 1 || v.Items[0].Character != "ODORICO" || !v.Items[0].QuadroStart {
		t.Fatalf("filtered = %+v", v.Items)
	}
	v = s.Filter("nada disso")
	if !v.Empty || v.Placeholder != Portuguese.NothingFound || len(v.Items) != 0 {
		t.Fatalf("empty view = %+v", v)
	}
	v = s.Next()
	if v.ActiveKey != 2 || v.Query != "nada disso" || !v.Empty {
		t.Fatalf("query should persist across navigation: %+v", v)
	}
	v = s.Filter("")
	if len(v.Items) != 1 || v.Empty {
		t.Fatalf("cleared filter = %+v", v)
	}
}

func TestSessionNextPrevEdges(t *testing.T) {
	s := newTestSession(t, DimUnidade)
	if v := s.Prev(); v.ActiveKey != 0 {
		t.Fatalf("Prev at start moved to %d", v.ActiveKey)
	}
	s.Next()
	v := s.Next()
	if v.ActiveKey != 2 || v.HasNext {
		t.Fatalf("at end: %+v", v)
	}
	if v = s.Next(); v.ActiveKey != 2 {
		t.Fatalf("Next at end moved to %d", v.ActiveKey)
	}
	if v = s.Prev(); v.ActiveKey != 1 {
		t.Fatalf("Prev = %d, want 1", v.ActiveKey)
	}
}

func TestSessionEmptyDocument(t *testing.T) {
	s := NewSession(nil, Options{})
	v := s.View()
	if v.HasActive || !v.Empty || len(v.Groups) != 0 {
		t.Fatalf("view = %+v", v)
	}
	if _, err := s.ActivateGroup(0); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("err = %v", err)
	}
	s.Next()
	s.Prev()
}
