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

	"scriptviewer/internal/script"
	"scriptviewer/internal/server"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML reader and JSON API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		doc, err := script.Load(ctx, cfg.Document.Source, fetchOptions())
		if err != nil {
			return err
		}
		opts, err := sessionOptions()
		if err != nil {
			return err
		}
		srv, err := server.New(doc, opts)
		if err != nil {
			return err
		}
		addr := cfg.Server.Addr
		if addrFlag != "" {
			addr = addrFlag
		}
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
}
