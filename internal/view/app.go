// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2024 b3t Contributors

package view

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/sirupsen/logrus"

	"github.com/b3/b3t/internal/config"
	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second

	helpPage = "help"
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash handles flash messages in the application.
type Flash struct {
	*tview.TextView
	app    *App
	cancel context.CancelFunc
	mx     sync.RWMutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)
	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...interface{}) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Warnf displays a formatted warning message.
func (f *Flash) Warnf(format string, args ...interface{}) {
	f.Warn(fmt.Sprintf(format, args...))
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		logrus.WithError(err).Debug("flash error")
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...interface{}) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	f.draw(func() {
		f.TextView.Clear()
	})
}

func (f *Flash) draw(fn func()) {
	if f.app != nil {
		f.app.QueueUpdateDraw(fn)
		return
	}
	fn()
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if msg == "" {
		f.Clear()
		return
	}

	f.draw(func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), tview.Escape(msg))
	})

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(FlashDelay):
		f.Clear()
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN[]"
	case FlashErr:
		return "[ERROR[]"
	default:
		return "[INFO[]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application
	version string
	Main    *tview.Pages
	Content *ui.Pages
	config  *config.Config
	command *Command
	factory dao.Factory
	cmdBar  *ui.CmdBar
	menu    *ui.Menu
	crumbs  *ui.Crumbs
	flash   *Flash
	help    *Help
	running bool
	mx      sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, version string) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		Application: tview.NewApplication(),
		version:     version,
		Main:        tview.NewPages(),
		Content:     ui.NewPages(),
		config:      cfg,
	}

	app.flash = NewFlash(app)
	app.menu = ui.NewMenu()
	app.crumbs = ui.NewCrumbs()
	app.cmdBar = ui.NewCmdBar()
	app.help = NewHelp(cfg.Aliases())

	app.Content.AddListener(app.menu)
	app.Content.AddListener(app.crumbs)
	app.Application.SetInputCapture(app.keyboard)
	app.EnableMouse(cfg.B3t.UI.EnableMouse)

	app.cmdBar.SetActiveFn(func(active bool) {
		if active {
			app.SetFocus(app.cmdBar)
			return
		}
		app.focusCurrent()
	})
	app.cmdBar.SetCommandFn(func(cmd string) {
		if err := app.command.Run(cmd); err != nil {
			app.flash.Errf("Command error: %v", err)
		}
	})
	app.cmdBar.SetFilterFn(app.applyFilter)
	app.cmdBar.SetCancelFn(func() {
		app.applyFilter("")
	})

	return app
}

// Init initializes and builds the application layout.
func (a *App) Init() error {
	a.mx.RLock()
	f := a.factory
	a.mx.RUnlock()
	if f == nil {
		return fmt.Errorf("factory not initialized")
	}
	registerActions(f)

	a.command = NewCommand(a)
	if err := a.command.Init(); err != nil {
		return fmt.Errorf("failed to initialize command: %w", err)
	}
	a.cmdBar.AddCommands(a.command.Names())

	a.Main.AddPage("main", a.buildLayout(), true, true)
	a.SetRoot(a.Main, true)
	a.SetFocus(a.Content)

	return nil
}

// Run starts the application.
func (a *App) Run() error {
	if err := a.command.Run(""); err != nil {
		a.flash.Errf("Failed to run default command: %v", err)
	}

	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	return a.Application.Run()
}

// Stop stops the running views and the application.
func (a *App) Stop() {
	a.clearStack()

	a.mx.Lock()
	a.running = false
	a.mx.Unlock()

	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.running
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Conf returns the application configuration.
func (a *App) Conf() *config.Config {
	return a.config
}

// GetFactory returns the data factory.
func (a *App) GetFactory() dao.Factory {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.factory
}

// SetFactory sets the data factory.
func (a *App) SetFactory(f dao.Factory) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.factory = f
}

// QueueUpdateDraw queues a function to be executed on the UI thread. It runs
// inline until the application starts.
func (a *App) QueueUpdateDraw(fn func()) {
	if !a.IsRunning() {
		fn()
		return
	}
	go a.Application.QueueUpdateDraw(fn)
}

// Inject replaces the view stack with a new root view.
func (a *App) Inject(c ui.Component) error {
	if err := c.Init(context.Background()); err != nil {
		return err
	}
	a.clearStack()
	a.Content.Show(c)
	a.SetFocus(c)
	c.Start()

	return nil
}

// Push layers a view over the current one.
func (a *App) Push(c ui.Component) error {
	if err := c.Init(context.Background()); err != nil {
		return err
	}
	a.Content.Show(c)
	a.SetFocus(c)
	c.Start()

	return nil
}

// Pop dismisses the current view if it is not the root one.
func (a *App) Pop() bool {
	if a.Content.StackSize() <= 1 {
		return false
	}
	if c, ok := a.Content.Pop(); ok {
		c.Stop()
	}
	a.focusCurrent()

	return true
}

func (a *App) clearStack() {
	for {
		c, ok := a.Content.Pop()
		if !ok {
			return
		}
		c.Stop()
	}
}

func (a *App) focusCurrent() {
	if c := a.Content.CurrentPage(); c != nil {
		a.SetFocus(c)
		return
	}
	a.SetFocus(a.Content)
}

// buildLayout creates the main UI layout.
func (a *App) buildLayout() *tview.Flex {
	bottomBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.menu, 4, 0, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow)
	main.AddItem(a.cmdBar, 3, 0, false)
	if !a.config.B3t.UI.Crumbsless {
		main.AddItem(a.crumbs, 1, 0, false)
	}
	main.AddItem(a.Content, 0, 1, true)
	main.AddItem(bottomBar, 5, 0, false)

	return main
}

// keyboard handles global keyboard events.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	// Modals and the command bar own the keyboard.
	if name, _ := a.Content.GetFrontPage(); name != a.Content.Current() {
		return evt
	}
	if a.cmdBar.IsActive() {
		return evt
	}

	key := evt.Key()
	if key == tcell.KeyRune {
		switch evt.Rune() {
		case ':':
			a.cmdBar.Activate(ui.ModeCommand)
			return nil
		case '/':
			a.cmdBar.Activate(ui.ModeFilter)
			return nil
		case '?':
			a.showHelp()
			return nil
		case 'q':
			a.Stop()
			return nil
		}
	}

	switch key {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyCtrlR:
		a.RefreshCurrentView()
		return nil
	case tcell.KeyEsc:
		if a.cmdBar.GetFilterText() != "" {
			a.cmdBar.ClearFilter()
			a.applyFilter("")
		} else {
			a.Pop()
		}
		return nil
	}

	if a.hotKey(evt) {
		return nil
	}

	return evt
}

// hotKey runs the command bound to a custom shortcut.
func (a *App) hotKey(evt *tcell.EventKey) bool {
	name := ui.KeyName(evt.Key())
	if evt.Key() == tcell.KeyRune {
		name = string(evt.Rune())
	}
	for _, hk := range a.config.HotKeys().Bindings() {
		if !strings.EqualFold(hk.ShortCut, name) {
			continue
		}
		if err := a.command.Run(hk.Command); err != nil {
			a.flash.Err(err)
		}
		return true
	}

	return false
}

// applyFilter applies filter to the current view.
func (a *App) applyFilter(filter string) {
	current := a.Content.CurrentPage()
	if current == nil {
		return
	}
	if filterable, ok := current.(interface{ SetFilter(string) }); ok {
		filterable.SetFilter(filter)
	}
}

// showHelp displays the help screen over the content area.
func (a *App) showHelp() {
	a.help.SetCloseFn(func() {
		a.Content.DismissModal(helpPage)
		a.focusCurrent()
	})
	a.Content.ShowModal(helpPage, a.help)
	a.SetFocus(a.help)
}

// RefreshCurrentView reloads data for the current view.
func (a *App) RefreshCurrentView() {
	current := a.Content.CurrentPage()
	if current == nil {
		return
	}
	if r, ok := current.(interface{ Refresh(model.RefreshMode) }); ok {
		a.flash.Info("Refreshing...")
		r.Refresh(model.RefreshDefault)
	}
}
