// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package view

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/b3/b3t/internal/config"
)

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// Help displays a full-screen help view with keybindings.
type Help struct {
	*tview.Table
	aliases *config.Aliases
	closeFn func()
}

// NewHelp creates a new help view.
func NewHelp(aliases *config.Aliases) *Help {
	h := &Help{
		Table:   tview.NewTable(),
		aliases: aliases,
	}
	h.build()
	return h
}

// SetCloseFn sets the callback when help is closed.
func (h *Help) SetCloseFn(fn func()) {
	h.closeFn = fn
}

func (h *Help) build() {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)

	h.populateHelp()

	h.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		switch evt.Key() {
		case tcell.KeyEsc, tcell.KeyEnter:
			h.close()
			return nil
		}
		if evt.Rune() == '?' || evt.Rune() == 'q' {
			h.close()
			return nil
		}
		return evt
	})
}

func (h *Help) close() {
	if h.closeFn != nil {
		h.closeFn()
	}
}

// resourceBinds lists the shortest alias of each resource.
func (h *Help) resourceBinds() []HelpBind {
	var out []HelpBind
	if h.aliases == nil {
		return out
	}
	for _, res := range h.aliases.Resources() {
		names := h.aliases.ShortNames(res)
		if len(names) == 0 {
			continue
		}
		out = append(out, HelpBind{Key: ":" + names[0], Desc: crumbName(res)})
	}
	return out
}

func crumbName(res string) string {
	if _, r, ok := strings.Cut(res, "/"); ok {
		return r
	}
	return res
}

// populateHelp fills the help table with keybindings in a 4-column layout.
func (h *Help) populateHelp() {
	general := []HelpBind{
		{"<:>", "Command"},
		{"</>", "Search"},
		{"<?>", "Help"},
		{"<esc>", "Back"},
		{"<q>", "Quit"},
		{"<ctrl-r>", "Refresh"},
	}

	navigation := []HelpBind{
		{"<j>", "Down"},
		{"<k>", "Up"},
		{"<g>", "Top"},
		{"<G>", "Bottom"},
		{"<]>", "Next Page"},
		{"<[>", "Prev Page"},
		{"<+>", "Bigger Pages"},
		{"<->", "Smaller Pages"},
		{"<m>", "Load More"},
	}

	selection := []HelpBind{
		{"<space>", "Select"},
		{"<a>", "Select Page"},
		{"<A>", "Select All Pages"},
		{"<s>", "Sort Column"},
		{"<S>", "Sort Direction"},
		{"<o>", "Expand"},
		{"<enter>", "Describe"},
		{"<C>", "Add To Cart"},
	}

	columns := [][]HelpBind{h.resourceBinds(), general, navigation, selection}
	headers := []string{"RESOURCES", "GENERAL", "NAVIGATION", "SELECTION"}

	maxRows := 0
	for _, col := range columns {
		if len(col) > maxRows {
			maxRows = len(col)
		}
	}

	// Each logical column spans a key, a description and a spacer.
	colWidth := 3
	for colIdx, col := range columns {
		baseCol := colIdx * colWidth

		header := tview.NewTableCell(headers[colIdx]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false)
		h.SetCell(0, baseCol, header)

		for rowIdx, bind := range col {
			row := rowIdx + 1

			keyCell := tview.NewTableCell(tview.Escape(bind.Key)).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false)
			h.SetCell(row, baseCol, keyCell)

			descCell := tview.NewTableCell(bind.Desc).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1)
			h.SetCell(row, baseCol+1, descCell)
		}

		if colIdx < len(columns)-1 {
			for row := 0; row <= maxRows; row++ {
				spacer := tview.NewTableCell("").
					SetSelectable(false).
					SetExpansion(1)
				h.SetCell(row, baseCol+2, spacer)
			}
		}
	}

	footer := tview.NewTableCell("<esc> to close").
		SetTextColor(tcell.ColorGray).
		SetSelectable(false)
	h.SetCell(maxRows+2, 0, footer)
}
