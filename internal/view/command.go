// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/b3/b3t/internal/config"
	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/ui"
)

// builtinCommands are handled by the interpreter itself.
var builtinCommands = map[string]bool{
	"help": true,
	"?":    true,
	"quit": true,
	"q":    true,
	"q!":   true,
}

// Command handles user command interpretation and execution.
type Command struct {
	app     *App
	aliases *config.Aliases
}

// NewCommand creates a new command interpreter.
func NewCommand(app *App) *Command {
	return &Command{
		app: app,
	}
}

// Init binds the interpreter to the configured aliases.
func (c *Command) Init() error {
	c.aliases = c.app.Conf().Aliases()
	if c.aliases == nil {
		return fmt.Errorf("no aliases configured")
	}
	return nil
}

// Names returns the commands offered as suggestions.
func (c *Command) Names() []string {
	var out []string
	for _, res := range c.aliases.Resources() {
		out = append(out, c.aliases.ShortNames(res)...)
	}
	out = append(out, "help", "quit")
	sort.Strings(out)

	return out
}

// Run parses and executes a command.
func (c *Command) Run(cmd string) error {
	cmd = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cmd), ":"))
	if cmd == "" {
		return c.defaultCmd()
	}

	cmdName, args := c.parseCommand(cmd)
	if builtinCommands[cmdName] {
		return c.builtinCmd(cmdName)
	}

	return c.resourceCmd(c.aliases.Get(cmdName), args)
}

// defaultCmd shows the configured startup view.
func (c *Command) defaultCmd() error {
	return c.resourceCmd(c.aliases.Get(c.app.Conf().B3t.DefaultView), nil)
}

func (c *Command) builtinCmd(name string) error {
	switch name {
	case "help", "?":
		c.app.showHelp()
	default:
		c.app.Stop()
	}
	return nil
}

// resourceCmd navigates to a resource view. An optional argument seeds the
// search filter.
func (c *Command) resourceCmd(res string, args []string) error {
	var rid dao.ResourceID
	if err := rid.Parse(res); err != nil {
		return fmt.Errorf("unknown command: %s", res)
	}
	if _, err := dao.AccessorFor(c.app.GetFactory(), &rid); err != nil {
		return err
	}

	view := c.viewFor(&rid)
	if len(args) > 0 {
		view.SeedSearch(strings.Join(args, " "))
	}
	if err := c.app.Inject(view); err != nil {
		return fmt.Errorf("failed to initialize view: %w", err)
	}
	c.app.Flash().Infof("Viewing %s...", rid.Resource)

	return nil
}

// ResourceViewer is a component listing one resource.
type ResourceViewer interface {
	ui.Component

	// SeedSearch sets the search term used by the mount fetch.
	SeedSearch(string)
}

func (c *Command) viewFor(rid *dao.ResourceID) ResourceViewer {
	switch *rid {
	case dao.ShoppingListRID:
		return NewShoppingList(c.app)
	default:
		return NewBrowser(c.app, rid)
	}
}

// parseCommand parses a command string into command name and arguments.
func (c *Command) parseCommand(cmd string) (string, []string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return "", nil
	}

	return strings.ToLower(parts[0]), parts[1:]
}
