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
	"reflect"
	"testing"

	"scriptviewer/internal/script"
)

// rec builds a record with the given seq and optional page/quadro/unidade (-1 = null).
func rec(seq, page, quadro, unidade int) script.Record {
	r := script.Record{Seq: seq, Type: script.TypeDialogue, Verb: []string{}, Tags: []string{}}
	if page >= 0 {
		r.Page = script.Int(page)
	}
	if quadro >= 0 {
		r.Quadro = script.Int(quadro)
	}
	if unidade >= 0 {
		r.Unidade = script.Int(unidade)
	}
	return r
}

func seqs(rs []script.Record) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Seq
	}
	return out
}

func TestBuildByPageKeepsInputOrder(t *testing.T) {
	recs := []script.Record{rec(0, 1, 2, -1), rec(1, 1, 1, -1), rec(2, 2, -1, -1), rec(3, 1, -1, -1), rec(4, -1, 1, 1)}
	g := Build(recs, DimPage)
	if got := g.Keys(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("keys = %v, want [1 2]", got)
	}
	if got := seqs(g[0].Members); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Fatalf("page 1 seqs = %v, want [0 1 3]", got)
	}
}

func TestBuildByQuadroOrdersByPageThenSeq(t *testing.T) {
	recs := []script.Record{rec(0, 5, 3, -1), rec(1, -1, 3, -1), rec(2, 2, 3, -1), rec(3, 5, 3, -1), rec(4, 2, 3, -1)}
	g := Build(recs, DimQuadro)
	grp, ok := g.Lookup(3)
	if !ok {
		t.Fatalf("group 3 missing")
	}
	if got := seqs(grp.Members); !reflect.DeepEqual(got, []int{2, 4, 0, 3, 1}) {
		t.Fatalf("quadro 3 seqs = %v, want [2 4 0 3 1]", got)
	}
}

func TestBuildByUnidadeOrdersByPageQuadroSeq(t *testing.T) {
	recs := []script.Record{
		rec(0, 3, 2, 1),
		rec(1, 3, 1, 1),
		rec(2, 1, -1, 1),
		rec(3, 1, 4, 1),
		rec(4, -1, 1, 1),
		rec(5, 3, 1, 1),
	}
	g := Build(recs, DimUnidade)
	if got := seqs(g[0].Members); !reflect.DeepEqual(got, []int{3, 2, 1, 5, 0, 4}) {
		t.Fatalf("unidade 1 seqs = %v, want [3 2 1 5 0 4]", got)
	}
}

func TestBuildExcludesNullKeys(t *testing.T) {
	recs := []script.Record{rec(0, 1, -1, -1), rec(1, 1, 2, -1)}
	g := Build(recs, DimQuadro)
	if len(g) != 1 || len(g[0].Members) != 1 || g[0].Members[0].Seq != 1 {
		t.Fatalf("groups = %+v", g)
	}
}

func TestBuildCoverInvariant(t *testing.T) {
	recs := []script.Record{rec(0, 0, -1, -1), rec(1, 0, -1, -1), rec(2, 1, 1, 1), rec(3, 2, 2, 2)}
	for _, d := range Dimensions {
		g := Build(recs, d)
		if len(g) == 0 || g[0].Key != CoverKey {
			t.Fatalf("%s: first group = %+v, want cover", d, g)
		}
		if got := seqs(g[0].Members); !reflect.DeepEqual(got, []int{0, 1}) {
			t.Fatalf("%s: cover seqs = %v, want [0 1]", d, got)
		}
	}
}

func TestBuildCoverNotDuplicatedWhenKeyZeroExists(t *testing.T) {
	recs := []script.Record{rec(0, 0, 0, -1), rec(1, 0, -1, -1), rec(2, 1, 1, -1)}
	g := Build(recs, DimQuadro)
	if got := seqs(g[0].Members); g[0].Key != 0 || !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("quadro 0 = %v, want only the natural member [0]", got)
	}
}

func TestBuildKeysAscending(t *testing.T) {
	recs := []script.Record{rec(0, 10, -1, -1), rec(1, 2, -1, -1), rec(2, 0, -1, -1), rec(3, 7, -1, -1)}
	if got := Build(recs, DimPage).Keys(); !reflect.DeepEqual(got, []int{0, 2, 7, 10}) {
		t.Fatalf("keys = %v", got)
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	recs := []script.Record{rec(0, 3, 1, -1), rec(1, 1, 1, -1)}
	_ = Build(recs, DimQuadro)
	if recs[0].Seq != 0 || recs[1].Seq != 1 {
		t.Fatalf("input reordered: %v", seqs(recs))
	}
}

func TestKeyLessCoverFirst(t *testing.T) {
	if !keyLess(0, -5) || keyLess(-5, 0) || !keyLess(1, 2) || keyLess(0, 0) {
		t.Fatalf("keyLess ordering broken")
	}
}

func TestParseDimension(t *testing.T) {
	for in, want := range map[string]Dimension{"page": DimPage, " Quadro ": DimQuadro, "unit": DimUnidade, "unidade": DimUnidade, "scene": DimQuadro} {
		got, err := ParseDimension(in)
		if err != nil || got != want {
			t.Errorf("ParseDimension(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDimension("act"); !errors.Is(err, ErrUnknownDimension) {
		t.Fatalf("err = %v, want ErrUnknownDimension", err)
	}
}

func TestDialogueCount(t *testing.T) {
	g := Group{Members: []script.Record{{Type: script.TypeDialogue}, {Type: script.TypeStage}, {Type: script.TypeDialogue}}}
	if n := g.DialogueCount(); n != 2 {
		t.Fatalf("DialogueCount = %d, want 2", n)
	}
}
