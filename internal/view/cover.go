/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package view

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scriptviewer/internal/script"
)

// Meta carries the document metadata shown on the cover sheet.
type Meta struct {
	Title  string
	Author string
}

// Cover is the rendered content of group 0.
type Cover struct {
	Title      string   `json:"title,omitempty"`
	Author     string   `json:"author,omitempty"`
	WorkLine   string   `json:"workLine"`
	SceneCount int      `json:"sceneCount"`
	Heading    string   `json:"heading"`
	Characters []string `json:"characters"`
	Action     string   `json:"action,omitempty"`
}

// BuildCover assembles the cover sheet. all is the whole document, members the
// records of the cover group. An empty cast is shown as a single dash.
func BuildCover(all, members []script.Record, meta Meta, v Vocabulary) Cover {
	c := Cover{
		Title:      strings.ToUpper(strings.TrimSpace(meta.Title)),
		SceneCount: SceneCount(all),
		Heading:    v.Characters,
		Characters: Characters(all, v.Lang),
		Action:     CoverAction(members, v),
	}
	if a := strings.TrimSpace(meta.Author); a != "" {
		c.Author = fmt.Sprintf(v.ByFormat, strings.ToUpper(a))
	}
	c.WorkLine = strings.ToUpper(fmt.Sprintf(v.WorkFormat, c.SceneCount))
	if len(c.Characters) == 0 {
		c.Characters = []string{"—"}
	}
	return c
}

// SceneCount is the number of distinct quadro values in records.
func SceneCount(records []script.Record) int {
	seen := map[int]struct{}{}
	for _, r := range records {
		if r.Quadro.Valid {
			seen[r.Quadro.Int] = struct{}{}
		}
	}
	return len(seen)
}

// Characters lists the distinct speaker names in locale order, ignoring case and
// accents when comparing. Placeholder names ("—", "-") are skipped.
func Characters(records []script.Record, lang string) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, r := range records {
		c := strings.TrimSpace(r.Character)
		if c == "" || c == "—" || c == "-" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		names = append(names, c)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Portuguese
	}
	col := collate.New(tag, collate.Loose)
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool { return col.CompareString(names[i], names[j]) < 0 })
	return names
}
