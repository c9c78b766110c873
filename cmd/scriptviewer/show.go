/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptviewer/internal/tui"
)

var (
	showGroup int
	showQuery string
	showList  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one group of the script",
	Long:  "Print the group selected with --group (default: the first group), filtered by --query. --list prints the group list instead.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		v := sess.View()
		if cmd.Flags().Changed("group") {
			if v, err = sess.ActivateGroup(showGroup); err != nil {
				return err
			}
		}
		if showQuery != "" {
			v = sess.Filter(showQuery)
		}
		out := cmd.OutOrStdout()
		if showList {
			fmt.Fprintln(out, tui.RenderGroups(v))
			return nil
		}
		fmt.Fprintln(out, tui.Render(v, sess.Vocabulary()))
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showGroup, "group", "g", 0, "group key to show")
	showCmd.Flags().StringVarP(&showQuery, "query", "q", "", "filter query")
	showCmd.Flags().BoolVar(&showList, "list", false, "list groups instead of content")
}
