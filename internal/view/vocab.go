/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package view

import "strings"

// Vocabulary holds the working-language words used in labels and placeholders.
type Vocabulary struct {
	Lang   string
	Cover  string
	Page   string
	Quadro string
	Unit   string
	Action string

	NothingFound string
	NoNotes      string
	Verb         string
	Characters   string
	ByFormat     string // author line, %s is the upper-cased author
	WorkFormat   string // work line, %d is the scene count
}

var Portuguese = Vocabulary{
	Lang:         "pt",
	Cover:        "Capa",
	Page:         "Página",
	Quadro:       "Quadro",
	Unit:         "Unidade",
	Action:       "Ação",
	NothingFound: "Nada encontrado para este filtro.",
	NoNotes:      "Sem observações.",
	Verb:         "Verbo:",
	Characters:   "PERSONAGENS:",
	ByFormat:     "DE %s",
	WorkFormat:   "PEÇA EM ATO ÚNICO E %d QUADROS",
}

var English = Vocabulary{
	Lang:         "en",
	Cover:        "Cover",
	Page:         "Page",
	Quadro:       "Scene",
	Unit:         "Unit",
	Action:       "Action",
	NothingFound: "Nothing found for this filter.",
	NoNotes:      "No notes.",
	Verb:         "Verb:",
	Characters:   "CHARACTERS:",
	ByFormat:     "BY %s",
	WorkFormat:   "PLAY IN ONE ACT AND %d SCENES",
}

// ForLanguage picks a vocabulary by language tag ("en", "en-US", "pt-BR", ...).
// Anything that is not English gets Portuguese.
func ForLanguage(lang string) Vocabulary {
	l := strings.ToLower(strings.TrimSpace(lang))
	if l == "en" || strings.HasPrefix(l, "en-") || strings.HasPrefix(l, "en_") {
		return English
	}
	return Portuguese
}

// DimensionWord returns the label word for a grouping dimension.
func (v Vocabulary) DimensionWord(d Dimension) string {
	switch d {
	case DimQuadro:
		return v.Quadro
	case DimUnidade:
		return v.Unit
	case DimPage:
		return v.Page
	}
	return v.Page
}
