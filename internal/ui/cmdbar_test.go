package ui

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func typeText(c *CmdBar, s string) {
	for _, r := range s {
		c.keyboard(runeKey(r))
	}
}

func TestCmdBarCommand(t *testing.T) {
	var cmds []string
	c := NewCmdBar()
	c.AddCommands([]string{"address", "addr", "quote"})
	c.SetCommandFn(func(s string) { cmds = append(cmds, s) })

	assert.NotNil(t, c.keyboard(runeKey('q')))

	c.Activate(ModeCommand)
	typeText(c, "quo")
	c.keyboard(key(tcell.KeyTab))
	assert.Equal(t, "quote", c.GetText())
	c.keyboard(key(tcell.KeyEnter))

	assert.Equal(t, []string{":quote"}, cmds)
	assert.False(t, c.IsActive())
	assert.Equal(t, ModeNormal, c.Mode())
	assert.Equal(t, []string{"quote"}, c.History())
}

func TestCmdBarSuggestions(t *testing.T) {
	c := NewCmdBar()
	c.SetCommands([]string{"address", "addr", "help"})

	assert.Equal(t, []string{"addr", "address"}, c.getSuggestions("ad"))

	c.pushHistory("address")
	assert.Equal(t, []string{"address", "addr"}, c.getSuggestions("ad"))
	assert.Nil(t, c.getSuggestions(""))
}

func TestCmdBarFilter(t *testing.T) {
	var terms []string
	var cancelled bool
	c := NewCmdBar()
	c.SetFilterFn(func(s string) { terms = append(terms, s) })
	c.SetCancelFn(func() { cancelled = true })

	c.Activate(ModeFilter)
	typeText(c, "ab")
	c.keyboard(key(tcell.KeyBackspace2))
	assert.Equal(t, []string{"a", "ab", "a"}, terms)

	c.keyboard(key(tcell.KeyEnter))
	assert.Equal(t, "a", c.GetFilterText())
	assert.False(t, cancelled)

	c.Activate(ModeFilter)
	c.keyboard(key(tcell.KeyEsc))
	assert.True(t, cancelled)

	c.ClearFilter()
	assert.Equal(t, "", c.GetFilterText())
	assert.Equal(t, "", terms[len(terms)-1])
}
