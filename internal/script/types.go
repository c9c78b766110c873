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
	"strconv"
	"strings"
)

// Document is a loaded play script: its records in input order plus the
// diagnostics for lines that were dropped while parsing.
// Records are read-only after load and safe to share between sessions.
type Document struct {
	Source  string
	Records []Record
	Dropped []Error
}

// Type indicates the kind of a script record.
// Section:  headers, cover material, unit/scene titles
// Dialogue: a character's line, with optional verbs and notes
// Stage:    stage direction (rubrica)
// Action:   action description, rendered like a stage direction

type Type int

const (
	TypeSection Type = iota
	TypeDialogue
	TypeStage
	TypeAction
)

// ParseType maps the raw "type" field to a Type. Unknown or empty values are sections.
func ParseType(s string) Type {
	switch strings.TrimSpace(s) {
	case "dialogue":
		return TypeDialogue
	case "stage":
		return TypeStage
	case "action":
		return TypeAction
	default:
		return TypeSection
	}
}

func (t Type) String() string {
	switch t {
	case TypeDialogue:
		return "dialogue"
	case TypeStage:
		return "stage"
	case TypeAction:
		return "action"
	default:
		return "section"
	}
}

func (t Type) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = ParseType(s)
	return nil
}

// NullInt is an optional non-negative integer, modelled after sql.NullInt64.
type NullInt struct {
	Int   int
	Valid bool
}

// Int returns a valid NullInt holding n.
func Int(n int) NullInt { return NullInt{Int: n, Valid: true} }

// Or returns the value, or def when it is null.
func (n NullInt) Or(def int) int {
	if !n.Valid {
		return def
	}
	return n.Int
}

// Is reports whether n is valid and equal to v.
func (n NullInt) Is(v int) bool { return n.Valid && n.Int == v }

func (n NullInt) String() string {
	if !n.Valid {
		return "null"
	}
	return strconv.Itoa(n.Int)
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Int)), nil
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullInt{}
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Int(v)
	return nil
}

// RawRecord is one decoded JSONL object before normalization. Numbers are json.Number.
type RawRecord map[string]any

// Record is the canonical shape of one script line.
// Character is empty when the record names no speaker.
// Seq is the zero-based position among the parsed records and the final tie-break of every ordering.
type Record struct {
	ID        string   `json:"id,omitempty"`
	Type      Type     `json:"type"`
	Page      NullInt  `json:"page"`
	Quadro    NullInt  `json:"quadro"`
	Unidade   NullInt  `json:"unidade"`
	Text      string   `json:"text"`
	Character string   `json:"character,omitempty"`
	Verb      []string `json:"verb"`
	Obs       string   `json:"obs"`
	Label     string   `json:"label"`
	Title     string   `json:"title"`
	Roman     string   `json:"roman,omitempty"`
	Tags      []string `json:"tags"`
	Seq       int      `json:"__seq"`
}

// IsDirection reports whether the record renders as a stage direction.
func (r Record) IsDirection() bool {
	switch r.Type {
	case TypeStage, TypeAction:
		return true
	case TypeSection, TypeDialogue:
		return false
	}
	return false
}

// Error describes a dropped or suspicious input line.
// Column is 0 when unknown.

type Error struct {
	Line    int    `json:"line"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	if e.Column > 0 {
		return "line " + strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column) + ": " + e.Message
	}
	return "line " + strconv.Itoa(e.Line) + ": " + e.Message
}
