/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package view

import (
	"strings"

	"scriptviewer/internal/script"
)

// SearchText is the haystack a record is matched against: character, text, verbs,
// obs, label, title and tags joined by single spaces.
func SearchText(r script.Record) string {
	parts := make([]string, 0, 5+len(r.Verb)+len(r.Tags))
	parts = append(parts, r.Character, r.Text)
	parts = append(parts, r.Verb...)
	parts = append(parts, r.Obs, r.Label, r.Title)
	parts = append(parts, r.Tags...)
	return strings.Join(parts, " ")
}

// Filter returns the members whose search text contains query, ignoring case.
// A blank query returns members unchanged.
func Filter(members []script.Record, query string) []script.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}
	out := make([]script.Record, 0, len(members))
	for _, r := range members {
		if strings.Contains(strings.ToLower(SearchText(r)), q) {
			out = append(out, r)
		}
	}
	return out
}
