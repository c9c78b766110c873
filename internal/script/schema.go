/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	gojsonschema "github.com/xeipuuv/gojsonschema"
)

//go:embed record.schema.json
var recordSchemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func recordSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(recordSchemaJSON))
	})
	return schema, schemaErr
}

// Check lints a JSONL stream against the record schema. It reports every line that
// Parse would drop plus lines whose fields have an unexpected shape. Those lines still
// load: Normalize degrades such fields to defaults.
func Check(r io.Reader) ([]Error, error) {
	s, err := recordSchema()
	if err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	var issues []Error
	var verr error
	err = eachLine(r, func(lineNo int, line []byte) {
		if verr != nil {
			return
		}
		if _, perr := decodeObject(line); perr != nil {
			perr.Line = lineNo
			issues = append(issues, *perr)
			return
		}
		res, err := s.Validate(gojsonschema.NewBytesLoader(line))
		if err != nil {
			verr = fmt.Errorf("line %d: %w", lineNo, err)
			return
		}
		for _, e := range res.Errors() {
			issues = append(issues, Error{Line: lineNo, Message: e.Field() + ": " + e.Description()})
		}
	})
	if err != nil {
		return nil, err
	}
	if verr != nil {
		return nil, verr
	}
	return issues, nil
}
