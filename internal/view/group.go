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
	"sort"
	"strings"

	"scriptviewer/internal/script"
)

// Dimension is the grouping axis.
type Dimension int

const (
	DimPage Dimension = iota
	DimQuadro
	DimUnidade
)

// ErrUnknownDimension is returned by ParseDimension for unsupported names.
var ErrUnknownDimension = errors.New("unknown grouping dimension")

// Dimensions lists every grouping axis in toggle order.
var Dimensions = []Dimension{DimPage, DimQuadro, DimUnidade}

// ParseDimension accepts the canonical names and their English aliases.
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "page", "pagina", "página":
		return DimPage, nil
	case "quadro", "scene":
		return DimQuadro, nil
	case "unidade", "unit":
		return DimUnidade, nil
	}
	return DimPage, fmt.Errorf("%w: %q", ErrUnknownDimension, s)
}

func (d Dimension) String() string {
	switch d {
	case DimQuadro:
		return "quadro"
	case DimUnidade:
		return "unidade"
	case DimPage:
		return "page"
	}
	return "page"
}

func (d Dimension) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Dimension) UnmarshalText(b []byte) error {
	v, err := ParseDimension(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Key returns the group key of r under d; null keys exclude the record.
func (d Dimension) Key(r script.Record) script.NullInt {
	switch d {
	case DimQuadro:
		return r.Quadro
	case DimUnidade:
		return r.Unidade
	case DimPage:
		return r.Page
	}
	return r.Page
}

// missing sorts absent page/quadro values after every real one.
const missing = 1_000_000_000

// less orders members inside one group. Seq is always the final tie-break.
func (d Dimension) less(a, b script.Record) bool {
	switch d {
	case DimQuadro:
		if pa, pb := a.Page.Or(missing), b.Page.Or(missing); pa != pb {
			return pa < pb
		}
	case DimUnidade:
		if pa, pb := a.Page.Or(missing), b.Page.Or(missing); pa != pb {
			return pa < pb
		}
		if qa, qb := a.Quadro.Or(missing), b.Quadro.Or(missing); qa != qb {
			return qa < qb
		}
	case DimPage:
	}
	return a.Seq < b.Seq
}

// Group is the ordered member list sharing one key. Key 0 is the cover.
type Group struct {
	Key     int
	Members []script.Record
}

// Groups are kept in display order: key 0 first, then ascending.
type Groups []Group

// CoverKey is the group key of the synthetic cover group.
const CoverKey = 0

// Build partitions records by d. Records with a null key are left out, except that
// page 0 records always form group 0 when no record maps to key 0 under d.
func Build(records []script.Record, d Dimension) Groups {
	byKey := map[int][]script.Record{}
	for _, r := range records {
		k := d.Key(r)
		if !k.Valid {
			continue
		}
		byKey[k.Int] = append(byKey[k.Int], r)
	}
	for _, members := range byKey {
		sort.SliceStable(members, func(i, j int) bool { return d.less(members[i], members[j]) })
	}
	if _, ok := byKey[CoverKey]; !ok {
		var cover []script.Record
		for _, r := range records {
			if r.Page.Is(0) {
				cover = append(cover, r)
			}
		}
		if len(cover) > 0 {
			sort.SliceStable(cover, func(i, j int) bool { return cover[i].Seq < cover[j].Seq })
			byKey[CoverKey] = cover
		}
	}

	out := make(Groups, 0, len(byKey))
	for k, members := range byKey {
		out = append(out, Group{Key: k, Members: members})
	}
	sort.Slice(out, func(i, j int) bool { return keyLess(out[i].Key, out[j].Key) })
	return out
}

func keyLess(a, b int) bool {
	if a == CoverKey || b == CoverKey {
		return a == CoverKey && b != CoverKey
	}
	return a < b
}

// Keys returns the group keys in display order.
func (g Groups) Keys() []int {
	keys := make([]int, len(g))
	for i, grp := range g {
		keys[i] = grp.Key
	}
	return keys
}

// Lookup finds the group with the given key.
func (g Groups) Lookup(key int) (Group, bool) {
	i := g.index(key)
	if i < 0 {
		return Group{}, false
	}
	return g[i], true
}

func (g Groups) index(key int) int {
	for i, grp := range g {
		if grp.Key == key {
			return i
		}
	}
	return -1
}

// DialogueCount counts the dialogue members of a group.
func (grp Group) DialogueCount() int {
	n := 0
	for _, r := range grp.Members {
		if r.Type == script.TypeDialogue {
			n++
		}
	}
	return n
}
