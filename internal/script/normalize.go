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
	"math"
	"strconv"
	"strings"
)

// Normalize converts one raw record into a Record. It never fails: fields that are
// missing or hold an unexpected JSON type fall back to their zero value.
//
// page prefers an explicit non-negative integer "page" field over a p<N> tag;
// quadro and unidade are always derived from q<N> and u<N> tags.
func Normalize(raw RawRecord, seq int) Record {
	tags := stringList(raw["tags"])
	page, ok := explicitInt(raw["page"])
	if !ok {
		page = TagNumber(tags, 'p')
	}
	return Record{
		ID:        scalarString(raw["id"]),
		Type:      ParseType(scalarString(raw["type"])),
		Page:      page,
		Quadro:    TagNumber(tags, 'q'),
		Unidade:   TagNumber(tags, 'u'),
		Text:      scalarString(raw["text"]),
		Character: scalarString(raw["character"]),
		Verb:      verbList(raw["verb"]),
		Obs:       scalarString(raw["obs"]),
		Label:     scalarString(raw["label"]),
		Title:     scalarString(raw["title"]),
		Roman:     scalarString(raw["roman"]),
		Tags:      tags,
		Seq:       seq,
	}
}

// TagNumber returns the numeric suffix of the first tag of the form <prefix><digits>,
// matching the prefix case-insensitively. Tags are scanned in order.
func TagNumber(tags []string, prefix byte) NullInt {
	lower := prefix | 0x20
	for _, t := range tags {
		if len(t) < 2 || t[0]|0x20 != lower {
			continue
		}
		digits := t[1:]
		if !allDigits(digits) {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		return Int(n)
	}
	return NullInt{}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// explicitInt accepts a JSON number or a digit string holding a non-negative integer.
func explicitInt(v any) (NullInt, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return nonNegative(n)
		}
		f, err := x.Float64()
		if err != nil || f != math.Trunc(f) || f > math.MaxInt32 {
			return NullInt{}, false
		}
		return nonNegative(int64(f))
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt32 {
			return NullInt{}, false
		}
		return nonNegative(int64(x))
	case string:
		s := strings.TrimSpace(x)
		if !allDigits(s) {
			return NullInt{}, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return NullInt{}, false
		}
		return Int(n), true
	}
	return NullInt{}, false
}

func nonNegative(n int64) (NullInt, bool) {
	if n < 0 || n > math.MaxInt32 {
		return NullInt{}, false
	}
	return Int(int(n)), true
}

// scalarString renders strings and numbers; everything else is empty.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "true"
		}
	}
	return ""
}

// stringList keeps the scalar entries of a JSON array; any other value yields an empty list.
func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s := scalarString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// verbList accepts a single verb or a list of verbs.
func verbList(v any) []string {
	if s := scalarString(v); s != "" {
		return []string{s}
	}
	return stringList(v)
}
