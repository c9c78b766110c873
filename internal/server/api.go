/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"scriptviewer/internal/export"
	"scriptviewer/internal/view"
)

func (s *Server) registerSessionRoutes(rg *gin.RouterGroup) {
	rg.POST("", s.createSession)                  // POST /api/sessions
	rg.GET("/:id", s.sessionAction(getView))      // GET /api/sessions/:id
	rg.DELETE("/:id", s.deleteSession)            // DELETE /api/sessions/:id
	rg.PUT("/:id/dimension", s.sessionAction(setDimension))
	rg.PUT("/:id/group", s.sessionAction(activateGroup))
	rg.PUT("/:id/filter", s.sessionAction(setFilter))
	rg.POST("/:id/next", s.sessionAction(next))
	rg.POST("/:id/prev", s.sessionAction(prev))
	rg.GET("/:id/export", s.sessionExport)
}

type dimensionRequest struct {
	Dimension string `json:"dimension" binding:"required"`
}

type groupRequest struct {
	Key *int `json:"key" binding:"required"`
}

type filterRequest struct {
	Query string `json:"query"`
}

// action applies one operation to a session and returns the resulting view.
type action func(c *gin.Context, sess *view.Session) (view.View, int, error)

func (s *Server) createSession(c *gin.Context) {
	id, e := s.newSession()
	var v view.View
	_ = s.with(e, func(sess *view.Session) error {
		v = sess.View()
		return nil
	})
	c.JSON(http.StatusCreated, gin.H{"id": id.String(), "view": v})
}

func (s *Server) deleteSession(c *gin.Context) {
	if !s.drop(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) sessionAction(fn action) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, ok := s.lookup(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		var (
			v      view.View
			status int
		)
		err := s.with(e, func(sess *view.Session) error {
			var err error
			v, status, err = fn(c, sess)
			return err
		})
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

func getView(_ *gin.Context, sess *view.Session) (view.View, int, error) {
	return sess.View(), http.StatusOK, nil
}

func setDimension(c *gin.Context, sess *view.Session) (view.View, int, error) {
	var req dimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return view.View{}, http.StatusBadRequest, err
	}
	d, err := view.ParseDimension(req.Dimension)
	if err != nil {
		return view.View{}, http.StatusBadRequest, err
	}
	return sess.SetDimension(d), http.StatusOK, nil
}

func activateGroup(c *gin.Context, sess *view.Session) (view.View, int, error) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return view.View{}, http.StatusBadRequest, err
	}
	v, err := sess.ActivateGroup(*req.Key)
	if errors.Is(err, view.ErrUnknownGroup) {
		return v, http.StatusNotFound, err
	}
	return v, http.StatusOK, err
}

func setFilter(c *gin.Context, sess *view.Session) (view.View, int, error) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return view.View{}, http.StatusBadRequest, err
	}
	return sess.Filter(req.Query), http.StatusOK, nil
}

func next(_ *gin.Context, sess *view.Session) (view.View, int, error) {
	return sess.Next(), http.StatusOK, nil
}

func prev(_ *gin.Context, sess *view.Session) (view.View, int, error) {
	return sess.Prev(), http.StatusOK, nil
}

// exportOptions reads format, group (repeatable or comma separated) and all=1.
// Without group or all, only the active group is exported.
func exportOptions(c *gin.Context, sess *view.Session) (export.Options, error) {
	f, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return export.Options{}, err
	}
	opt := export.Options{Format: f, Query: sess.Query(), PageSize: c.Query("size")}
	for _, raw := range c.QueryArray("group") {
		for _, part := range strings.Split(raw, ",") {
			k, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return export.Options{}, err
			}
			opt.Groups = append(opt.Groups, k)
		}
	}
	if len(opt.Groups) == 0 && c.Query("all") != "1" {
		if k, ok := sess.ActiveKey(); ok {
			opt.Groups = []int{k}
		}
	}
	return opt, nil
}

func (s *Server) sessionExport(c *gin.Context) {
	e, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
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
