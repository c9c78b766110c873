/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package view

import (
	"testing"

	"scriptviewer/internal/script"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 90: "XC",
		400: "CD", 1994: "MCMXCIV", 3999: "MMMCMXCIX", 0: "0", -1: "",
	}
	for n, want := range cases {
		if got := ToRoman(n); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestUnitRoman(t *testing.T) {
	members := []script.Record{{Roman: "  "}, {Roman: " IIb "}, {Roman: "X"}}
	if got := UnitRoman(members, 3); got != "IIb" {
		t.Fatalf("override = %q, want IIb", got)
	}
	if got := UnitRoman(nil, 3); got != "III" {
		t.Fatalf("computed = %q, want III", got)
	}
	if got := UnitRoman(nil, 0); got != "0" {
		t.Fatalf("zero key = %q, want 0", got)
	}
}

func section(label, title string) script.Record {
	return script.Record{Type: script.TypeSection, Label: label, Title: title}
}

func TestUnitTitlePrefersUnitHeading(t *testing.T) {
	members := []script.Record{
		section("Prologue", "Before the Storm"),
		{Type: script.TypeDialogue, Label: "Unit", Title: "Not a section"},
		section("unit", "  Rain in the Valley "),
		section("Epilogue", "After"),
	}
	if got := UnitTitle(members, English); got != "Rain in the Valley" {
		t.Fatalf("UnitTitle = %q, want %q", got, "Rain in the Valley")
	}
}

func TestUnitTitlePortugueseHeading(t *testing.T) {
	members := []script.Record{section("Outro", "Primeiro"), section("UNIDADE", "A Chegada")}
	if got := UnitTitle(members, Portuguese); got != "A Chegada" {
		t.Fatalf("UnitTitle = %q, want A Chegada", got)
	}
}

func TestUnitTitleFallbacks(t *testing.T) {
	cases := []struct {
		name    string
		members []script.Record
		want    string
	}{
		{"any section title", []script.Record{section("Unidade", ""), section("Cena", " O Comício ")}, "O Comício"},
		{"label skips action", []script.Record{section("Ação", ""), section("ACAO", ""), section(" Abertura ", "")}, "Abertura"},
		{"action only", []script.Record{section("Açao", "")}, ""},
		{"non sections ignored", []script.Record{{Type: script.TypeStage, Label: "X", Title: "Y"}}, ""},
		{"empty", nil, ""},
	}
	for _, c := range cases {
		if got := UnitTitle(c.members, Portuguese); got != c.want {
			t.Errorf("%s: UnitTitle = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestUnitTitleRulesOrder(t *testing.T) {
	names := []string{}
	for _, r := range unitTitleRules {
		names = append(names, r.name)
	}
	if len(names) != 3 || names[0] != "unit-heading" || names[1] != "section-title" || names[2] != "section-label" {
		t.Fatalf("rule order = %v", names)
	}
}

func TestGroupLabel(t *testing.T) {
	if got := GroupLabel(DimUnidade, 0, nil, Portuguese); got != "Capa" {
		t.Fatalf("cover = %q", got)
	}
	if got := GroupLabel(DimPage, 12, nil, Portuguese); got != "Página 12" {
		t.Fatalf("page = %q", got)
	}
	if got := GroupLabel(DimQuadro, 3, nil, English); got != "Scene 3" {
		t.Fatalf("quadro = %q", got)
	}
	if got := GroupLabel(DimUnidade, 4, nil, Portuguese); got != "Unidade IV" {
		t.Fatalf("unit = %q", got)
	}
	if got := GroupLabel(DimUnidade, 4, []script.Record{{Roman: "IV-a"}}, English); got != "Unit IV-a" {
		t.Fatalf("unit override = %q", got)
	}
}

func TestCoverActionByLabel(t *testing.T) {
	cover := []script.Record{
		{Label: "Título", Text: "O Bem-Amado"},
		{Label: " ação ", Text: " Sucupira, anos 60 "},
	}
	if got := CoverAction(cover, Portuguese); got != "Ação: Sucupira, anos 60" {
		t.Fatalf("CoverAction = %q", got)
	}
	if got := CoverAction([]script.Record{{Label: "ACAO"}}, Portuguese); got != "Ação" {
		t.Fatalf("bare = %q", got)
	}
}

func TestCoverActionByText(t *testing.T) {
	cases := []struct {
		text, label, want string
	}{
		{"Ação: a praça da cidade", "", "Ação: a praça da cidade"},
		{"  Acao   a praça", "", "Ação: a praça"},
		{"", "Ação na prefeitura", "Ação: na prefeitura"},
		{"acao-livre", "", "Ação: -livre"},
		{"Acaolândia", "", ""},
		{"A ação começa", "", ""},
	}
	for _, c := range cases {
		got := CoverAction([]script.Record{{Text: c.text, Label: c.label}}, Portuguese)
		if got != c.want {
			t.Errorf("CoverAction(text=%q label=%q) = %q, want %q", c.text, c.label, got, c.want)
		}
	}
}

func TestCoverActionDecomposedAccents(t *testing.T) {
	got := CoverAction([]script.Record{{Text: "Aça\u0303o  na rua"}}, Portuguese)
	if got != "Ação: na rua" {
		t.Fatalf("CoverAction = %q", got)
	}
}

func TestCoverActionEnglish(t *testing.T) {
	got := CoverAction([]script.Record{{Text: "action a small town"}}, English)
	if got != "Action: a small town" {
		t.Fatalf("CoverAction = %q", got)
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Ação Órfã"); got != "Acao Orfa" {
		t.Fatalf("Fold = %q", got)
	}
	if got := foldKey("  AÇÃO "); got != "acao" {
		t.Fatalf("foldKey = %q", got)
	}
}

func TestForLanguage(t *testing.T) {
	if ForLanguage("en-US").Cover != "Cover" || ForLanguage("pt-BR").Cover != "Capa" || ForLanguage("").Cover != "Capa" {
		t.Fatalf("ForLanguage picked the wrong vocabulary")
	}
}
