/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"scriptviewer/internal/export"
	applog "scriptviewer/internal/log"
)

var (
	exportOut    string
	exportFormat string
	exportGroups []int
	exportQuery  string
	exportSize   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a PDF or plain-text print view",
	Long:  "Export every group (or those given with --group) under the active grouping. Use -o - to write to stdout.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		format := export.FormatForPath(exportOut)
		if exportFormat != "" {
			if format, err = export.ParseFormat(exportFormat); err != nil {
				return err
			}
		}
		opt := export.Options{Format: format, Groups: exportGroups, Query: exportQuery, PageSize: exportSize}
		if exportOut == "-" {
			return export.Write(cmd.OutOrStdout(), sess, opt)
		}
		if err := export.ToFile(exportOut, sess, opt); err != nil {
			return err
		}
		applog.WithOperation(applog.WithComponent("export"), "write").Info("export written",
			slog.String("path", exportOut), slog.String("format", string(format)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "roteiro.pdf", "output file, - for stdout")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "pdf or txt (default from file extension)")
	exportCmd.Flags().IntSliceVarP(&exportGroups, "group", "g", nil, "group keys to export (default all)")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "filter applied to every group")
	exportCmd.Flags().StringVar(&exportSize, "size", "A4", "PDF page size: A4, A5 or Letter")
}
