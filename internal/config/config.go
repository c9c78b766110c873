/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration read from a YAML file.
// Environment variables are applied on top as read-only overrides.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type DocumentConfig struct {
	Source    string `yaml:"source"`    // path or http(s) URL of the JSONL script
	Title     string `yaml:"title"`     // cover title; empty hides it
	Author    string `yaml:"author"`    // cover author line; empty hides it
	Language  string `yaml:"language"`  // "pt" | "en"
	Dimension string `yaml:"dimension"` // initial grouping: page | quadro | unidade
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type FetchConfig struct {
	TimeoutMs int `yaml:"timeout_ms"`
	Retries   int `yaml:"retries"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Document      DocumentConfig `yaml:"document"`
	Server        ServerConfig   `yaml:"server"`
	Fetch         FetchConfig    `yaml:"fetch"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Document:      DocumentConfig{Source: "roteiro.jsonl", Language: "pt", Dimension: "page"},
		Server:        ServerConfig{Addr: "127.0.0.1:8080"},
		Fetch:         FetchConfig{TimeoutMs: 15000, Retries: 3},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvSource         = "SV_SOURCE"
	EnvTitle          = "SV_TITLE"
	EnvAuthor         = "SV_AUTHOR"
	EnvLanguage       = "SV_LANGUAGE"
	EnvDimension      = "SV_DIMENSION"
	EnvAddr           = "SV_ADDR"
	EnvFetchTimeoutMs = "SV_FETCH_TIMEOUT_MS"
	EnvFetchRetries   = "SV_FETCH_RETRIES"
	EnvLogLevel       = "SV_LOG_LEVEL"
	EnvLogFormat      = "SV_LOG_FORMAT"
	EnvLogSource      = "SV_LOG_SOURCE"
	EnvLogFile        = "SV_LOG_FILE"
)

// envKeys maps dotted config keys to the env var overriding them.
var envKeys = map[string]string{
	"document.source":    EnvSource,
	"document.title":     EnvTitle,
	"document.author":    EnvAuthor,
	"document.language":  EnvLanguage,
	"document.dimension": EnvDimension,
	"server.addr":        EnvAddr,
	"fetch.timeout_ms":   EnvFetchTimeoutMs,
	"fetch.retries":      EnvFetchRetries,
	"logging.level":      EnvLogLevel,
	"logging.format":     EnvLogFormat,
	"logging.source":     EnvLogSource,
	"logging.file":       EnvLogFile,
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "ScriptViewer")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "ScriptViewer")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "scriptviewer")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "scriptviewer")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the config file, applies defaults, and merges environment overrides.
// An explicit path must exist and parse; the per-user file is optional.
func Load(explicit string) (AppConfig, error) {
	cfg := Defaults()
	path := strings.TrimSpace(explicit)
	required := path != ""
	if !required {
		p, err := ConfigPath()
		if err != nil {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if uerr := yaml.Unmarshal(data, &fileCfg); uerr != nil {
			if required {
				return cfg, fmt.Errorf("parse config %s: %w", path, uerr)
			}
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	case required:
		return cfg, fmt.Errorf("read config: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if s := strings.TrimSpace(src.Document.Source); s != "" {
		dst.Document.Source = s
	}
	if s := strings.TrimSpace(src.Document.Title); s != "" {
		dst.Document.Title = s
	}
	if s := strings.TrimSpace(src.Document.Author); s != "" {
		dst.Document.Author = s
	}
	if s := strings.TrimSpace(src.Document.Language); s != "" {
		dst.Document.Language = strings.ToLower(s)
	}
	if s := strings.TrimSpace(src.Document.Dimension); s != "" {
		dst.Document.Dimension = strings.ToLower(s)
	}
	if s := strings.TrimSpace(src.Server.Addr); s != "" {
		dst.Server.Addr = s
	}
	if src.Fetch.TimeoutMs > 0 {
		dst.Fetch.TimeoutMs = src.Fetch.TimeoutMs
	}
	if src.Fetch.Retries > 0 {
		dst.Fetch.Retries = src.Fetch.Retries
	}
	if s := strings.TrimSpace(src.Logging.Level); s != "" {
		dst.Logging.Level = strings.ToLower(s)
	}
	if s := strings.TrimSpace(src.Logging.Format); s != "" {
		dst.Logging.Format = strings.ToLower(s)
	}
	dst.Logging.Source = src.Logging.Source
	if s := strings.TrimSpace(src.Logging.File); s != "" {
		dst.Logging.File = s
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := env(EnvSource); v != "" {
		cfg.Document.Source = v
	}
	if v := env(EnvTitle); v != "" {
		cfg.Document.Title = v
	}
	if v := env(EnvAuthor); v != "" {
		cfg.Document.Author = v
	}
	if v := env(EnvLanguage); v != "" {
		cfg.Document.Language = strings.ToLower(v)
	}
	if v := env(EnvDimension); v != "" {
		cfg.Document.Dimension = strings.ToLower(v)
	}
	if v := env(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := env(EnvFetchTimeoutMs); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Fetch.TimeoutMs = n
		}
	}
	if v := env(EnvFetchRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Fetch.Retries = n
		}
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := env(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := env(EnvLogSource); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := env(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	name, ok := envKeys[key]
	if !ok || os.Getenv(name) == "" {
		return "", false
	}
	return name, true
}

// FetchTimeout returns the fetch timeout, falling back to the default for non-positive values.
func (f FetchConfig) FetchTimeout() time.Duration {
	if f.TimeoutMs <= 0 {
		return time.Duration(Defaults().Fetch.TimeoutMs) * time.Millisecond
	}
	return time.Duration(f.TimeoutMs) * time.Millisecond
}
