package ui

import (
	"context"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyActionsHandle(t *testing.T) {
	var hits []string
	hit := func(s string) ActionHandler {
		return func(*tcell.EventKey) *tcell.EventKey {
			hits = append(hits, s)
			return nil
		}
	}
	aa := NewKeyActions()
	aa.Bulk(KeyMap{
		KeySpace:       NewKeyAction("Select", hit("space"), true),
		tcell.KeyCtrlR: NewKeyAction("Refresh", hit("refresh"), true),
	})

	evt, ok := aa.Handle(runeKey(' '))
	assert.True(t, ok)
	assert.Nil(t, evt)
	_, ok = aa.Handle(key(tcell.KeyCtrlR))
	assert.True(t, ok)
	evt, ok = aa.Handle(runeKey('z'))
	assert.False(t, ok)
	assert.NotNil(t, evt)

	assert.Equal(t, []string{"space", "refresh"}, hits)
}

func TestKeyActionsMerge(t *testing.T) {
	a, b := NewKeyActions(), NewKeyActions()
	a.Add(KeyA, NewKeyAction("Mine", nil, true))
	b.Add(KeyA, NewKeyAction("Theirs", nil, true))
	b.Add(KeyS, NewKeyAction("Sort", nil, true))

	a.Merge(b)
	assert.Equal(t, 2, a.Len())
	act, _ := a.Get(KeyA)
	assert.Equal(t, "Mine", act.Description)

	a.Delete(KeyA, KeyS)
	assert.Equal(t, 0, a.Len())
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "space", KeyName(KeySpace))
	assert.Equal(t, "]", KeyName(KeyRBracket))
	assert.Equal(t, "A", KeyName(KeyShiftA))
	assert.Equal(t, "Enter", KeyName(tcell.KeyEnter))
}

func TestActionRegistry(t *testing.T) {
	RegisterActions("storefront/test", []ResourceAction{
		{Key: KeyY, Name: "yank"},
		{Key: KeyShiftC, Name: "cart", Dangerous: true, Handler: func(context.Context, []string) (string, error) {
			return "ok", nil
		}},
	})

	aa := GetActions("storefront/test")
	assert.Len(t, aa, 2)
	assert.Equal(t, "cart", aa[0].Name)

	a := GetAction("storefront/test", KeyShiftC)
	if assert.NotNil(t, a) {
		msg, err := a.Handler(context.Background(), []string{"1"})
		assert.NoError(t, err)
		assert.Equal(t, "ok", msg)
	}
	assert.Nil(t, GetAction("storefront/test", KeyA))
	assert.Nil(t, GetAction("storefront/none", KeyY))
}
