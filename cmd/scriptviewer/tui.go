/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"github.com/spf13/cobra"

	"scriptviewer/internal/tui"
	"scriptviewer/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal reader",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), sess)
	},
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Desktop reader (requires a build with -tags fyne)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		return ui.Run(cmd.Context(), sess, cfg.Document.Title)
	},
}
