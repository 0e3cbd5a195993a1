// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	menuIndexFmt = " [yellow::b]<%d>[white::-] %s "
	menuPlainFmt = " [orange::b]<%s>[white::-]%s %s "
	maxRows      = 4
)

// Menu presents menu options.
type Menu struct {
	*tview.Table

	hints MenuHints
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := &Menu{
		Table: tview.NewTable(),
	}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// Hints returns the hints currently displayed.
func (m *Menu) Hints() MenuHints {
	return m.hints
}

// HydrateMenu populate menu ui from hints. The first hint for a mnemonic wins.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	hh = dedupHints(hh)
	sort.Sort(hh)
	m.hints = hh

	table := make([]MenuHints, maxRows+1)
	colCount := (len(hh) / maxRows) + 1
	for row := range maxRows {
		table[row] = make(MenuHints, colCount)
	}
	out := m.buildMenuTable(hh, table, colCount)

	for row := range out {
		for col := range len(out[row]) {
			c := tview.NewTableCell(out[row][col])
			if out[row][col] == "" {
				c = tview.NewTableCell("")
			}
			c.SetBackgroundColor(tcell.ColorDefault)
			m.SetCell(row, col, c)
		}
	}
}

func (m *Menu) buildMenuTable(hh MenuHints, table []MenuHints, colCount int) [][]string {
	var row, col int
	maxKeys := make([]int, colCount)

	for _, h := range hh {
		if !h.Visible {
			continue
		}

		if maxKeys[col] < len(h.Mnemonic) {
			maxKeys[col] = len(h.Mnemonic)
		}
		table[row][col] = h
		row++
		if row >= maxRows {
			row, col = 0, col+1
		}
	}

	out := make([][]string, len(table))
	for r := range out {
		out[r] = make([]string, len(table[r]))
		for c := range table[r] {
			out[r][c] = m.formatMenu(table[r][c], maxKeys[c])
		}
	}

	return out
}

func dedupHints(hh MenuHints) MenuHints {
	seen := make(map[string]struct{}, len(hh))
	out := make(MenuHints, 0, len(hh))
	for _, h := range hh {
		if _, ok := seen[h.Mnemonic]; ok {
			continue
		}
		seen[h.Mnemonic] = struct{}{}
		out = append(out, h)
	}
	return out
}

func (m *Menu) formatMenu(h MenuHint, size int) string {
	if h.Mnemonic == "" || h.Description == "" {
		return ""
	}

	i, err := strconv.Atoi(h.Mnemonic)
	if err == nil {
		return fmt.Sprintf(menuIndexFmt, i, h.Description)
	}
	pad := ""
	if size > len(h.Mnemonic) {
		pad = strings.Repeat(" ", size-len(h.Mnemonic))
	}

	return fmt.Sprintf(menuPlainFmt, tview.Escape(h.Mnemonic), pad, h.Description)
}

// StackPushed notifies a component was added.
func (m *Menu) StackPushed(c Component) {
	if h, ok := c.(Hinter); ok {
		m.HydrateMenu(h.Hints())
	}
}

// StackPopped notifies a component was removed.
func (m *Menu) StackPopped(_, top Component) {
	if top != nil {
		if h, ok := top.(Hinter); ok {
			m.HydrateMenu(h.Hints())
		}
	} else {
		m.Clear()
	}
}

// StackTop notifies the top component.
func (m *Menu) StackTop(t Component) {
	if h, ok := t.(Hinter); ok {
		m.HydrateMenu(h.Hints())
	}
}
