/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads newline-delimited JSON records from r.
// Supported input:
//   - one JSON object per line; "\n" and "\r\n" line endings
//   - blank lines are ignored
//
// Lines that are not a single JSON object are dropped and reported in the
// returned []Error; parsing always continues with the next line. Seq numbers
// are assigned to kept records only, in input order. The error result is set
// only when reading from r fails.
func Parse(r io.Reader) ([]Record, []Error, error) {
	var (
		records []Record
		dropped []Error
	)
	err := eachLine(r, func(lineNo int, line []byte) {
		raw, perr := decodeObject(line)
		if perr != nil {
			dropped = append(dropped, *perr)
			dropped[len(dropped)-1].Line = lineNo
			return
		}
		records = append(records, Normalize(raw, len(records)))
	})
	if records == nil {
		records = []Record{}
	}
	return records, dropped, err
}

// ParseString is Parse over an in-memory script.
func ParseString(input string) ([]Record, []Error) {
	recs, errs, _ := Parse(strings.NewReader(input))
	return recs, errs
}

// eachLine calls fn for every non-blank, trimmed line. Unlike bufio.Scanner it has no
// line length limit, so one oversized line cannot abort the whole document.
func eachLine(r io.Reader, fn func(lineNo int, line []byte)) error {
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		chunk, err := br.ReadBytes('\n')
		if len(chunk) > 0 {
			lineNo++
			if line := bytes.TrimSpace(chunk); len(line) > 0 {
				fn(lineNo, line)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", lineNo+1, err)
		}
	}
}

// decodeObject parses exactly one JSON object; trailing data is an error.
func decodeObject(line []byte) (RawRecord, *Error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		e := &Error{Message: err.Error()}
		var se *json.SyntaxError
		if errors.As(err, &se) {
			e.Column = int(se.Offset)
		}
		return nil, e
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Column: int(dec.InputOffset()) + 1, Message: "unexpected data after JSON value"}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &Error{Message: fmt.Sprintf("expected JSON object, got %s", jsonKind(v))}
	}
	return RawRecord(obj), nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
