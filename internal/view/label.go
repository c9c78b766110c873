/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package view

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"scriptviewer/internal/script"
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman renders n in uppercase subtractive notation. 0 yields "0", negative values "".
func ToRoman(n int) string {
	if n < 0 {
		return ""
	}
	if n == 0 {
		return "0"
	}
	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String()
}

// UnitRoman is the numeral shown for a unit group: the first explicit roman override
// among the members, else the key converted. Keys <= 0 without an override give "0".
func UnitRoman(members []script.Record, key int) string {
	for _, r := range members {
		if s := strings.TrimSpace(r.Roman); s != "" {
			return s
		}
	}
	if key <= 0 {
		return "0"
	}
	return ToRoman(key)
}

type titleRule struct {
	name    string
	match   func(r script.Record, v Vocabulary) bool
	extract func(r script.Record) string
}

func trimmedTitle(r script.Record) string { return strings.TrimSpace(r.Title) }
func trimmedLabel(r script.Record) string { return strings.TrimSpace(r.Label) }

// unitTitleRules are evaluated in order; the first rule with a non-empty result wins.
var unitTitleRules = []titleRule{
	{
		name: "unit-heading",
		match: func(r script.Record, v Vocabulary) bool {
			return r.Type == script.TypeSection && strings.EqualFold(r.Label, v.Unit) && trimmedTitle(r) != ""
		},
		extract: trimmedTitle,
	},
	{
		name: "section-title",
		match: func(r script.Record, _ Vocabulary) bool {
			return r.Type == script.TypeSection && trimmedTitle(r) != ""
		},
		extract: trimmedTitle,
	},
	{
		name: "section-label",
		match: func(r script.Record, v Vocabulary) bool {
			return r.Type == script.TypeSection && trimmedLabel(r) != "" &&
				!strings.EqualFold(Fold(trimmedLabel(r)), Fold(v.Action))
		},
		extract: trimmedLabel,
	},
}

// UnitTitle resolves the display title of a unit group, or "".
func UnitTitle(members []script.Record, v Vocabulary) string {
	for _, rule := range unitTitleRules {
		for _, r := range members {
			if rule.match(r, v) {
				if s := rule.extract(r); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// GroupLabel is the sidebar and header text of a group.
func GroupLabel(d Dimension, key int, members []script.Record, v Vocabulary) string {
	if key == CoverKey {
		return v.Cover
	}
	if d == DimUnidade {
		return v.Unit + " " + UnitRoman(members, key)
	}
	return v.DimensionWord(d) + " " + strconv.Itoa(key)
}

// CoverAction finds the action line among the cover records.
// A record labelled with the action word wins; otherwise the first text (or label)
// that starts with the action word is used. Matching ignores case and accents.
func CoverAction(cover []script.Record, v Vocabulary) string {
	word := foldKey(v.Action)
	if word == "" {
		return ""
	}
	for _, r := range cover {
		if foldKey(r.Label) == word {
			if t := strings.TrimSpace(r.Text); t != "" {
				return v.Action + ": " + t
			}
			return v.Action
		}
	}

	q := regexp.QuoteMeta(word)
	leading := regexp.MustCompile("^" + q + `(\b|:|-)`)
	withColon := regexp.MustCompile(q + `\s*:`)
	for _, r := range cover {
		raw := r.Text
		if raw == "" {
			raw = r.Label
		}
		n := foldKey(raw)
		if !leading.MatchString(n) {
			continue
		}
		if withColon.MatchString(n) {
			return strings.TrimSpace(raw)
		}
		return v.Action + ": " + stripLeadingWord(strings.TrimSpace(raw), word)
	}
	return ""
}

// stripLeadingWord removes the prefix of s whose folded lower-case form equals word,
// plus the whitespace after it. s is returned unchanged when no such prefix exists.
func stripLeadingWord(s, word string) string {
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		folded := strings.ToLower(Fold(s[:i]))
		if folded == word {
			// swallow combining marks that belong to the last letter
			for i < len(s) {
				r, sz := utf8.DecodeRuneInString(s[i:])
				if !unicode.Is(unicode.Mn, r) {
					break
				}
				i += sz
			}
			return strings.TrimLeftFunc(s[i:], unicode.IsSpace)
		}
		if len(folded) > len(word) {
			break
		}
	}
	return s
}
