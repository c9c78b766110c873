/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package server

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"scriptviewer/internal/export"
	"scriptviewer/internal/script"
	"scriptviewer/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"emph":      func(s string) template.HTML { return template.HTML(export.EmphasisHTML(s)) },
		"printLine": export.PrintLine,
		"verbs":     export.Verbs,
		"body":      export.BodyText,
		"speaker": func(r script.Record) string {
			if c := strings.TrimSpace(r.Character); c != "" {
				return c
			}
			return export.NoCharacter
		},
		"isDialogue":  func(r script.Record) bool { return r.Type == script.TypeDialogue },
		"isDirection": func(r script.Record) bool { return r.IsDirection() },
		"dimensions":  func() []view.Dimension { return view.Dimensions },
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

type pageData struct {
	View       view.View
	Vocab      view.Vocabulary
	Title      string
	SessionID  string
	DimLabels  map[view.Dimension]string
	ExportHref string
}

// page renders the reading view. Query parameters dim, group, q, nav=next|prev
// are applied to the cookie session in that order.
func (s *Server) page(c *gin.Context) {
	e, id := s.cookieSession(c)
	var data pageData
	_ = s.with(e, func(sess *view.Session) error {
		if raw := c.Query("dim"); raw != "" {
			if d, err := view.ParseDimension(raw); err == nil && d != sess.Dimension() {
				sess.SetDimension(d)
			}
		}
		if raw := c.Query("group"); raw != "" {
			if k, err := strconv.Atoi(raw); err == nil {
				_, _ = sess.ActivateGroup(k)
			}
		}
		if q, ok := c.GetQuery("q"); ok {
			sess.Filter(q)
		}
		v := sess.View()
		switch c.Query("nav") {
		case "next":
			v = sess.Next()
		case "prev":
			v = sess.Prev()
		}
		voc := sess.Vocabulary()
		data = pageData{
			View:      v,
			Vocab:     voc,
			Title:     sess.Meta().Title,
			SessionID: id,
			DimLabels: map[view.Dimension]string{
				view.DimPage:    voc.Page,
				view.DimQuadro:  voc.Quadro,
				view.DimUnidade: voc.Unit,
			},
			ExportHref: "/export",
		}
		return nil
	})
	c.HTML(http.StatusOK, "page.html", data)
}

// pageExport prints the active group of the cookie session.
func (s *Server) pageExport(c *gin.Context) {
	e, _ := s.cookieSession(c)
	_ = s.with(e, func(sess *view.Session) error {
		opt, err := exportOptions(c, sess)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil
		}
		writeExport(c, sess, opt, "roteiro")
		return nil
	})
}

func (s *Server) cookieSession(c *gin.Context) (*entry, string) {
	if raw, err := c.Cookie(SessionCookie); err == nil {
		if e, ok := s.lookup(raw); ok {
			return e, raw
		}
	}
	id, e := s.newSession()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id.String(), int(s.IdleTTL.Seconds()), "/", "", false, true)
	return e, id.String()
}
