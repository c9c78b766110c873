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
	"fmt"

	"scriptviewer/internal/script"
)

// ErrUnknownGroup is returned by ActivateGroup for a key absent from the current grouping.
var ErrUnknownGroup = errors.New("unknown group")

// Options configures a new Session.
type Options struct {
	Dimension  Dimension
	Vocabulary Vocabulary
	Meta       Meta
}

// Session is the browsing state over one document: grouping dimension, active group
// and filter query. A Session is not safe for concurrent use.
type Session struct {
	doc    *script.Document
	vocab  Vocabulary
	meta   Meta
	dim    Dimension
	groups Groups
	active int // index into groups, -1 when there are none
	query  string
}

// NewSession groups doc by opts.Dimension and activates the first group.
func NewSession(doc *script.Document, opts Options) *Session {
	if doc == nil {
		doc = &script.Document{}
	}
	v := opts.Vocabulary
	if v.Lang == "" {
		v = Portuguese
	}
	s := &Session{doc: doc, vocab: v, meta: opts.Meta, active: -1}
	s.regroup(opts.Dimension)
	return s
}

func (s *Session) regroup(d Dimension) {
	prev, hadActive := s.ActiveKey()
	s.dim = d
	s.groups = Build(s.doc.Records, d)
	s.active = -1
	if hadActive {
		s.active = s.groups.index(prev)
	}
	if s.active < 0 && len(s.groups) > 0 {
		s.active = 0
	}
}

// Dimension returns the active grouping dimension.
func (s *Session) Dimension() Dimension { return s.dim }

// Groups returns the current grouping.
func (s *Session) Groups() Groups { return s.groups }

// Query returns the current filter query.
func (s *Session) Query() string { return s.query }

// Document returns the browsed document.
func (s *Session) Document() *script.Document { return s.doc }

// Meta returns the cover metadata.
func (s *Session) Meta() Meta { return s.meta }

// Vocabulary returns the working-language words of the session.
func (s *Session) Vocabulary() Vocabulary { return s.vocab }

// ActiveKey reports the key of the active group; ok is false when nothing is grouped.
func (s *Session) ActiveKey() (key int, ok bool) {
	if s.active < 0 || s.active >= len(s.groups) {
		return 0, false
	}
	return s.groups[s.active].Key, true
}

// SetDimension regroups the document. The active key survives when it exists in the
// new grouping, otherwise the first group becomes active.
func (s *Session) SetDimension(d Dimension) View {
	s.regroup(d)
	return s.View()
}

// ActivateGroup makes key the active group.
func (s *Session) ActivateGroup(key int) (View, error) {
	i := s.groups.index(key)
	if i < 0 {
		return s.View(), fmt.Errorf("%w: %s %d", ErrUnknownGroup, s.dim, key)
	}
	s.active = i
	return s.View(), nil
}

// Filter sets the query applied to the active group's members.
func (s *Session) Filter(query string) View {
	s.query = query
	return s.View()
}

// Next activates the following group; it is a no-op on the last one.
func (s *Session) Next() View {
	if s.active >= 0 && s.active < len(s.groups)-1 {
		s.active++
	}
	return s.View()
}

// Prev activates the preceding group; it is a no-op on the first one.
func (s *Session) Prev() View {
	if s.active > 0 {
		s.active--
	}
	return s.View()
}

// GroupSummary is one entry of the group list.
type GroupSummary struct {
	Key           int    `json:"key"`
	Label         string `json:"label"`
	DialogueCount int    `json:"dialogueCount"`
	Active        bool   `json:"active"`
}

// Item is a record as displayed in the active group.
type Item struct {
	script.Record
	QuadroStart bool `json:"quadroStart,omitempty"`
	CoverPage   bool `json:"coverPage,omitempty"`
}

// View is everything a renderer needs for one frame.
// Empty is set when a non-cover group has no members left after filtering.
type View struct {
	Dimension   Dimension      `json:"dimension"`
	Groups      []GroupSummary `json:"groups"`
	HasActive   bool           `json:"hasActive"`
	ActiveKey   int            `json:"activeKey"`
	Label       string         `json:"label"`
	UnitTitle   string         `json:"unitTitle,omitempty"`
	Query       string         `json:"query"`
	Cover       *Cover         `json:"cover,omitempty"`
	Items       []Item         `json:"items"`
	Empty       bool           `json:"empty"`
	Placeholder string         `json:"placeholder,omitempty"`
	HasPrev     bool           `json:"hasPrev"`
	HasNext     bool           `json:"hasNext"`
}

// View renders the current state.
func (s *Session) View() View {
	v := View{
		Dimension: s.dim,
		Groups:    make([]GroupSummary, len(s.groups)),
		Query:     s.query,
		Items:     []Item{},
	}
	for i, g := range s.groups {
		v.Groups[i] = GroupSummary{
			Key:           g.Key,
			Label:         GroupLabel(s.dim, g.Key, g.Members, s.vocab),
			DialogueCount: g.DialogueCount(),
			Active:        i == s.active,
		}
	}
	key, ok := s.ActiveKey()
	if !ok {
		v.Empty = true
		v.Placeholder = s.vocab.NothingFound
		return v
	}
	g := s.groups[s.active]
	v.HasActive = true
	v.ActiveKey = key
	v.Label = v.Groups[s.active].Label
	v.HasPrev = s.active > 0
	v.HasNext = s.active < len(s.groups)-1

	if key == CoverKey {
		c := BuildCover(s.doc.Records, g.Members, s.meta, s.vocab)
		v.Cover = &c
		return v
	}
	if s.dim == DimUnidade {
		v.UnitTitle = UnitTitle(g.Members, s.vocab)
	}
	for _, r := range Filter(g.Members, s.query) {
		v.Items = append(v.Items, Item{
			Record:      r,
			QuadroStart: s.dim == DimQuadro && r.Quadro.Valid,
			CoverPage:   r.Page.Is(0),
		})
	}
	if len(v.Items) == 0 {
		v.Empty = true
		v.Placeholder = s.vocab.NothingFound
	}
	return v
}
