/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	applog "scriptviewer/internal/log"
)

// ErrNoSource is returned when no data source was configured.
var ErrNoSource = errors.New("no script source configured")

// FetchOptions controls how a remote script is retrieved.
// Zero values fall back to a 15s timeout and 3 attempts.
type FetchOptions struct {
	Timeout  time.Duration
	Attempts uint
	Delay    time.Duration
	Client   *http.Client
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.Attempts == 0 {
		o.Attempts = 3
	}
	if o.Delay <= 0 {
		o.Delay = 250 * time.Millisecond
	}
	if o.Client == nil {
		o.Client = &http.Client{Timeout: o.Timeout}
	}
	return o
}

// IsRemote reports whether src is fetched over HTTP.
func IsRemote(src string) bool {
	s := strings.ToLower(strings.TrimSpace(src))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch retrieves the raw script bytes from a local path, "-" (stdin), or an http(s) URL.
// Remote fetches are retried on transport errors and 5xx responses; 4xx responses fail immediately.
func Fetch(ctx context.Context, src string, opt FetchOptions) ([]byte, error) {
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return nil, ErrNoSource
	case src == "-":
		return io.ReadAll(os.Stdin)
	case !IsRemote(src):
		b, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		return b, nil
	}

	opt = opt.withDefaults()
	l := applog.WithSource(applog.WithOperation(applog.WithComponent("loader"), "fetch"), src)
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := opt.Client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Unrecoverable(fmt.Errorf("GET %s: %s", src, resp.Status))
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("GET %s: %s", src, resp.Status)
			}
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(opt.Attempts),
		retry.Delay(opt.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			l.Warn("fetch attempt failed", slog.Uint64("attempt", uint64(n+1)), slog.Any("err", err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch script: %w", err)
	}
	return body, nil
}

// Load fetches and parses a script. Dropped lines are logged at debug level and kept
// on the Document; they never fail the load.
func Load(ctx context.Context, src string, opt FetchOptions) (*Document, error) {
	l := applog.WithSource(applog.WithOperation(applog.WithComponent("loader"), "load"), src)
	data, err := Fetch(ctx, src, opt)
	if err != nil {
		l.Error("load failed", slog.Any("err", err))
		return nil, err
	}
	recs, dropped, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for _, d := range dropped {
		l.Debug("line dropped", slog.Int("line", d.Line), slog.String("reason", d.Message))
	}
	l.Info("document loaded", slog.Int("records", len(recs)), slog.Int("dropped", len(dropped)))
	return &Document{Source: src, Records: recs, Dropped: dropped}, nil
}

// NewDocument wraps already-parsed records, e.g. in tests or embedded samples.
func NewDocument(source string, records []Record) *Document {
	return &Document{Source: source, Records: records}
}
