// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package view

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model1"
	"github.com/b3/b3t/internal/render"
	"github.com/b3/b3t/internal/ui"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"

	describeTimeout = 10 * time.Second
)

// Describe displays the full record behind a row.
type Describe struct {
	*tview.TextView

	app     *App
	rid     *dao.ResourceID
	id      string
	format  string
	query   string
	record  model1.Record
	actions *ui.KeyActions
	wrapOn  bool
}

// NewDescribe creates a new record detail view. The row record is shown
// until the fresh copy is fetched.
func NewDescribe(app *App, rid *dao.ResourceID, id string, rec model1.Record) *Describe {
	d := &Describe{
		TextView: tview.NewTextView(),
		app:      app,
		rid:      rid,
		id:       id,
		format:   formatYAML,
		record:   rec,
		actions:  ui.NewKeyActions(),
	}

	d.SetDynamicColors(true)
	d.SetWrap(false)
	d.SetWordWrap(false)
	d.SetScrollable(true)
	d.SetBorder(true)
	d.SetBorderPadding(0, 0, 1, 1)
	d.SetBorderColor(tcell.ColorAqua)

	return d
}

// Init initializes the describe view.
func (d *Describe) Init(context.Context) error {
	d.bindKeys()
	d.SetInputCapture(d.keyboard)
	return nil
}

// Start fetches and shows the record.
func (d *Describe) Start() {
	d.Refresh()
}

// Stop stops the describe view.
func (d *Describe) Stop() {
	d.Clear()
}

// Name returns the view name.
func (d *Describe) Name() string {
	return d.rid.String() + ":" + d.id
}

// Hints returns the menu hints for this view.
func (d *Describe) Hints() ui.MenuHints {
	return d.actions.Hints()
}

// Refresh reloads the record.
func (d *Describe) Refresh() {
	if err := d.fetch(); err != nil {
		d.app.Flash().Warnf("Showing cached %s: %v", d.id, err)
	}
	d.render()
}

// SetFilter narrows the output to a JSON path such as lines.#.sku.
func (d *Describe) SetFilter(q string) {
	d.query = strings.TrimSpace(q)
	d.render()
}

func (d *Describe) fetch() error {
	acc, err := dao.AccessorFor(d.app.GetFactory(), d.rid)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), describeTimeout)
	defer cancel()

	rec, err := acc.Get(ctx, d.id)
	if err != nil {
		return err
	}
	d.record = rec

	return nil
}

func (d *Describe) bindKeys() {
	d.actions.Bulk(ui.KeyMap{
		ui.KeyY:             ui.NewKeyAction("YAML", d.formatCmd(formatYAML), true),
		ui.KeyShiftJ:        ui.NewKeyAction("JSON", d.formatCmd(formatJSON), true),
		ui.KeyW:             ui.NewKeyAction("Wrap", d.toggleWrap, true),
		tcell.KeyBackspace2: ui.NewKeyAction("Back", d.backCmd, true),
	})
}

func (d *Describe) toggleWrap(*tcell.EventKey) *tcell.EventKey {
	d.wrapOn = !d.wrapOn
	d.SetWrap(d.wrapOn)
	d.SetWordWrap(d.wrapOn)
	return nil
}

func (d *Describe) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	row, _ := d.GetScrollOffset()
	switch evt.Key() {
	case tcell.KeyDown:
		d.ScrollTo(row+1, 0)
		return nil
	case tcell.KeyUp:
		d.ScrollTo(max(row-1, 0), 0)
		return nil
	case tcell.KeyPgDn:
		d.ScrollTo(row+20, 0)
		return nil
	case tcell.KeyPgUp:
		d.ScrollTo(max(row-20, 0), 0)
		return nil
	case tcell.KeyHome:
		d.ScrollToBeginning()
		return nil
	case tcell.KeyEnd:
		d.ScrollToEnd()
		return nil
	case tcell.KeyRune:
		switch evt.Rune() {
		case 'j':
			d.ScrollTo(row+1, 0)
			return nil
		case 'k':
			d.ScrollTo(max(row-1, 0), 0)
			return nil
		case 'g':
			d.ScrollToBeginning()
			return nil
		case 'G':
			d.ScrollToEnd()
			return nil
		}
	}

	if e, ok := d.actions.Handle(evt); ok {
		return e
	}
	return evt
}

func (d *Describe) formatCmd(format string) ui.ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		d.format = format
		d.render()
		return nil
	}
}

func (d *Describe) backCmd(*tcell.EventKey) *tcell.EventKey {
	d.app.Pop()
	return nil
}

func (d *Describe) render() {
	d.Clear()
	d.SetTitle(d.title())
	d.SetText(d.content())
	d.ScrollToBeginning()
}

func (d *Describe) title() string {
	t := fmt.Sprintf(" %s/%s [%s[] ", d.rid.Resource, d.id, strings.ToUpper(d.format))
	if d.query != "" {
		t += fmt.Sprintf("</%s> ", tview.Escape(d.query))
	}
	return t
}

func (d *Describe) content() string {
	if len(d.record) == 0 {
		return "[red::]No data available[-::]"
	}
	raw, err := json.Marshal(d.record)
	if err != nil {
		return fmt.Sprintf("[red::]# Error encoding record: %v[-::]", err)
	}
	if d.query != "" {
		res := gjson.GetBytes(raw, d.query)
		if !res.Exists() {
			return fmt.Sprintf("[gray::]# no match for %s[-::]", tview.Escape(d.query))
		}
		raw = []byte(res.Raw)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Sprintf("[red::]# Error decoding record: %v[-::]", err)
	}
	if d.format == formatJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("[red::]# Error generating JSON: %v[-::]", err)
		}
		return tview.Escape(string(out))
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("[red::]# Error generating YAML: %v[-::]", err)
	}
	return highlightYAML(string(out))
}

// highlightYAML applies syntax highlighting to YAML content.
func highlightYAML(content string) string {
	var out strings.Builder
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		line = tview.Escape(line)
		colonIdx := strings.Index(line, ":")
		if colonIdx <= 0 {
			out.WriteString(line + "\n")
			continue
		}

		key, value := line[:colonIdx+1], strings.TrimSpace(line[colonIdx+1:])
		trimmed := strings.TrimLeft(key, " -")
		indent := key[:len(key)-len(trimmed)]
		if value == "" {
			fmt.Fprintf(&out, "%s[aqua::]%s[-::]\n", indent, trimmed)
			continue
		}
		fmt.Fprintf(&out, "%s[aqua::]%s[-::] %s\n", indent, trimmed, colorizeValue(value))
	}

	return out.String()
}

// colorizeValue applies color based on value type.
func colorizeValue(value string) string {
	trimmed := strings.Trim(value, "\"'")

	switch strings.ToLower(trimmed) {
	case "true", "yes":
		return "[green::]" + value + "[-::]"
	case "false", "no":
		return "[red::]" + value + "[-::]"
	case "null", "~":
		return "[gray::]" + value + "[-::]"
	case render.StateAccepted:
		return "[green::]" + value + "[-::]"
	case render.StateDeclined, render.StateExpired:
		return "[red::]" + value + "[-::]"
	case render.StateDraft, render.StateSubmitted:
		return "[yellow::]" + value + "[-::]"
	}

	if _, err := fmt.Sscanf(trimmed, "%f", new(float64)); err == nil {
		return "[fuchsia::]" + value + "[-::]"
	}

	return value
}
