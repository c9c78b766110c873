/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"scriptviewer/internal/script"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the JSONL source against the record schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := script.Fetch(cmd.Context(), cfg.Document.Source, fetchOptions())
		if err != nil {
			return err
		}
		issues, err := script.Check(bytes.NewReader(data))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, is := range issues {
			fmt.Fprintln(out, is.Error())
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d issue(s) in %s", len(issues), cfg.Document.Source)
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}
