/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"scriptviewer/internal/config"
	applog "scriptviewer/internal/log"
	"scriptviewer/internal/script"
	"scriptviewer/internal/version"
	"scriptviewer/internal/view"
)

var (
	cfgFile    string
	sourceFlag string
	dimFlag    string
	langFlag   string

	cfg config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "scriptviewer",
	Short: "Browse a play script stored as JSONL",
	Long: `scriptviewer reads a play script stored as one JSON record per line and
shows it grouped by page, scene (quadro) or unit (unidade), with free-text filtering.

Surfaces:
  - serve: HTML reading page and JSON API
  - show:  print one group to the terminal
  - tui:   interactive terminal reader
  - ui:    desktop reader (build with -tags fyne)
  - export: PDF or plain-text print view
  - check: lint the JSONL source`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if sourceFlag != "" {
			loaded.Document.Source = sourceFlag
		}
		if dimFlag != "" {
			loaded.Document.Dimension = dimFlag
		}
		if langFlag != "" {
			loaded.Document.Language = langFlag
		}
		cfg = loaded
		applog.Init(applog.Options{
			Level:          cfg.Logging.Level,
			Format:         cfg.Logging.Format,
			AddSource:      cfg.Logging.Source,
			File:           cfg.Logging.File,
			DisableConsole: cmd.Name() == tuiCmd.Name(),
		})
		applog.WithComponent("cli").Debug("config loaded",
			slog.String("command", cmd.Name()),
			slog.String("source", cfg.Document.Source),
			slog.String("dimension", cfg.Document.Dimension))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: per-user scriptviewer/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "script source: path, - for stdin, or http(s) URL")
	rootCmd.PersistentFlags().StringVarP(&dimFlag, "dimension", "d", "", "grouping: page, quadro or unidade")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "working language: pt or en")

	rootCmd.AddCommand(versionCmd, serveCmd, showCmd, checkCmd, exportCmd, tuiCmd, uiCmd)
}

func fetchOptions() script.FetchOptions {
	return script.FetchOptions{
		Timeout:  cfg.Fetch.FetchTimeout(),
		Attempts: uint(cfg.Fetch.Retries) + 1,
	}
}

// openSession loads the configured document and starts a browsing session on it.
func openSession(ctx context.Context) (*view.Session, error) {
	doc, err := script.Load(ctx, cfg.Document.Source, fetchOptions())
	if err != nil {
		return nil, err
	}
	opts, err := sessionOptions()
	if err != nil {
		return nil, err
	}
	return view.NewSession(doc, opts), nil
}

func sessionOptions() (view.Options, error) {
	d, err := view.ParseDimension(cfg.Document.Dimension)
	if err != nil {
		return view.Options{}, fmt.Errorf("document.dimension: %w", err)
	}
	return view.Options{
		Dimension:  d,
		Vocabulary: view.ForLanguage(cfg.Document.Language),
		Meta:       view.Meta{Title: cfg.Document.Title, Author: cfg.Document.Author},
	}, nil
}
