//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scriptviewer/internal/crash"
	applog "scriptviewer/internal/log"
	"scriptviewer/internal/view"
)

// Run starts the Fyne desktop reader over sess and blocks until the window closes
// or ctx is cancelled.
func Run(ctx context.Context, sess *view.Session, title string) error {
	defer crash.Recover()
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	fyneApp := app.NewWithID("scriptviewer")
	if title == "" {
		title = "Script Viewer"
	}
	w := fyneApp.NewWindow(title)
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1100)
	winH := prefs.IntWithFallback("window.height", 760)
	if winW < 700 {
		winW = 700
	}
	if winH < 500 {
		winH = 500
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	voc := sess.Vocabulary()
	current := sess.View()

	content := widget.NewRichText()
	content.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(content)

	var groups *widget.List
	prevBtn := widget.NewButton("←", nil)
	nextBtn := widget.NewButton("→", nil)

	// syncing guards against List.Select re-entering OnSelected while we render.
	syncing := false
	render := func(v view.View) {
		current = v
		content.Segments = segments(v, voc)
		content.Refresh()
		scroll.ScrollToTop()
		if v.HasPrev {
			prevBtn.Enable()
		} else {
			prevBtn.Disable()
		}
		if v.HasNext {
			nextBtn.Enable()
		} else {
			nextBtn.Disable()
		}
		groups.Refresh()
		for i, g := range v.Groups {
			if g.Active {
				syncing = true
				groups.Select(i)
				syncing = false
				break
			}
		}
	}

	groups = widget.NewList(
		func() int { return len(current.Groups) },
		func() fyne.CanvasObject { return widget.NewLabel("Unidade MMMCMXCIX (999)") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			g := current.Groups[id]
			text := g.Label
			if g.DialogueCount > 0 {
				text += "  (" + strconv.Itoa(g.DialogueCount) + ")"
			}
			obj.(*widget.Label).SetText(text)
		},
	)
	groups.OnSelected = func(id widget.ListItemID) {
		if syncing || id < 0 || id >= len(current.Groups) {
			return
		}
		v, err := sess.ActivateGroup(current.Groups[id].Key)
		if err != nil {
			l.Warn("activate group", slog.Any("err", err))
			return
		}
		render(v)
	}
	prevBtn.OnTapped = func() { render(sess.Prev()) }
	nextBtn.OnTapped = func() { render(sess.Next()) }

	labels := map[string]view.Dimension{voc.Page: view.DimPage, voc.Quadro: view.DimQuadro, voc.Unit: view.DimUnidade}
	dims := widget.NewRadioGroup([]string{voc.Page, voc.Quadro, voc.Unit}, func(choice string) {
		if d, ok := labels[choice]; ok && d != sess.Dimension() {
			l.Debug("dimension changed", slog.String("dimension", d.String()))
			render(sess.SetDimension(d))
		}
	})
	dims.Horizontal = true
	dims.Required = true
	dims.SetSelected(voc.DimensionWord(sess.Dimension()))

	search := widget.NewEntry()
	search.SetPlaceHolder("…")
	search.OnChanged = func(q string) { render(sess.Filter(q)) }

	top := container.NewBorder(nil, nil, dims, container.NewHBox(prevBtn, nextBtn), search)
	split := container.NewHSplit(groups, scroll)
	split.Offset = 0.22
	w.SetContent(container.NewBorder(top, nil, nil, nil, split))
	render(current)

	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
	})
	closed := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(fyneApp.Quit)
		case <-closed:
		}
	}()
	w.ShowAndRun()
	close(closed)
	l.Info("UI closed", slog.String("query", strings.TrimSpace(sess.Query())))
	return nil
}
