/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package server exposes the script view over HTTP: an HTML reading page and a
// JSON API for browsing sessions.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scriptviewer/internal/export"
	applog "scriptviewer/internal/log"
	"scriptviewer/internal/script"
	"scriptviewer/internal/view"
)

// SessionCookie carries the browsing session of the HTML page.
const SessionCookie = "sv_session"

// DefaultIdleTTL is how long an unused session is kept.
const DefaultIdleTTL = 2 * time.Hour

type entry struct {
	mu       sync.Mutex
	sess     *view.Session
	lastUsed time.Time
}

// Server holds one read-only document and the browsing sessions over it.
type Server struct {
	doc  *script.Document
	opts view.Options
	tmpl *template.Template
	log  *slog.Logger

	IdleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

// New creates a server for doc. opts seeds every new session.
func New(doc *script.Document, opts view.Options) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{
		doc:      doc,
		opts:     opts,
		tmpl:     tmpl,
		log:      applog.WithComponent("server"),
		IdleTTL:  DefaultIdleTTL,
		now:      time.Now,
		sessions: map[uuid.UUID]*entry{},
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "records": len(s.doc.Records), "dropped": len(s.doc.Dropped)})
	})
	r.GET("/", s.page)
	r.GET("/export", s.pageExport)

	api := r.Group("/api")
	api.GET("/records", s.records)
	s.registerSessionRoutes(api.Group("/sessions"))
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	l := applog.WithOperation(s.log, "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Debug("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}

// newSession registers a fresh session and returns its id.
func (s *Server) newSession() (uuid.UUID, *entry) {
	id := uuid.New()
	e := &entry{sess: view.NewSession(s.doc, s.opts), lastUsed: s.now()}
	s.mu.Lock()
	s.evictIdleLocked()
	s.sessions[id] = e
	n := len(s.sessions)
	s.mu.Unlock()
	s.log.Debug("session created", slog.String("session", id.String()), slog.Int("active", n))
	return id, e
}

func (s *Server) lookup(raw string) (*entry, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	return e, ok
}

func (s *Server) drop(raw string) bool {
	id, err := uuid.Parse(raw)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Server) evictIdleLocked() {
	if s.IdleTTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.IdleTTL)
	for id, e := range s.sessions {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.sessions, id)
		}
	}
}

// with runs fn while holding the session lock.
func (s *Server) with(e *entry, fn func(*view.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = s.now()
	return fn(e.sess)
}

func (s *Server) records(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"source": s.doc.Source, "records": s.doc.Records})
}

func writeExport(c *gin.Context, sess *view.Session, opt export.Options, name string) {
	var buf bytes.Buffer
	if err := export.Write(&buf, sess, opt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	ctype, ext := "application/pdf", ".pdf"
	if opt.Format == export.FormatText {
		ctype, ext = "text/plain; charset=utf-8", ".txt"
	}
	c.Header("Content-Disposition", "inline; filename=\""+name+ext+"\"")
	c.Data(http.StatusOK, ctype, buf.Bytes())
}
