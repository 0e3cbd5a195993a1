// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys, mapped into the tcell key space the way the table keyboard
// handlers look them up.
const (
	KeySpace    tcell.Key = ' '
	KeyPlus     tcell.Key = '+'
	KeyMinus    tcell.Key = '-'
	KeySlash    tcell.Key = '/'
	KeyColon    tcell.Key = ':'
	KeyQuestion tcell.Key = '?'
	KeyLBracket tcell.Key = '['
	KeyRBracket tcell.Key = ']'
	KeyLess     tcell.Key = '<'
	KeyGreater  tcell.Key = '>'
	KeyA        tcell.Key = 'a'
	KeyD        tcell.Key = 'd'
	KeyM        tcell.Key = 'm'
	KeyO        tcell.Key = 'o'
	KeyQ        tcell.Key = 'q'
	KeyS        tcell.Key = 's'
	KeyW        tcell.Key = 'w'
	KeyY        tcell.Key = 'y'
	KeyShiftA   tcell.Key = 'A'
	KeyShiftC   tcell.Key = 'C'
	KeyShiftJ   tcell.Key = 'J'
	KeyShiftS   tcell.Key = 'S'
)

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
	Dangerous   bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// NewDangerousKeyAction returns an action the caller should confirm first.
func NewDangerousKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible, Dangerous: true}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks the actions bound to a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns an empty action set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Get returns the action bound to a key.
func (a *KeyActions) Get(key tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	v, ok := a.actions[key]
	return v, ok
}

// Add binds a key.
func (a *KeyActions) Add(key tcell.Key, action KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[key] = action
}

// Bulk binds several keys.
func (a *KeyActions) Bulk(m KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range m {
		a.actions[k] = v
	}
}

// Merge adds the actions of b not already bound here.
func (a *KeyActions) Merge(b *KeyActions) {
	b.mx.RLock()
	defer b.mx.RUnlock()
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range b.actions {
		if _, ok := a.actions[k]; !ok {
			a.actions[k] = v
		}
	}
}

// Delete unbinds keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Len returns the number of bindings.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Handle dispatches a key event, rune keys included.
func (a *KeyActions) Handle(evt *tcell.EventKey) (*tcell.EventKey, bool) {
	key := evt.Key()
	if key == tcell.KeyRune {
		key = tcell.Key(evt.Rune())
	}
	action, ok := a.Get(key)
	if !ok || action.Action == nil {
		return evt, false
	}

	return action.Action(evt), true
}

// Hints returns the menu hints of the visible actions.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]tcell.Key, 0, len(a.actions))
	for k := range a.actions {
		kk = append(kk, k)
	}
	sort.Slice(kk, func(i, j int) bool { return kk[i] < kk[j] })

	hh := make(MenuHints, 0, len(kk))
	for _, k := range kk {
		v := a.actions[k]
		hh = append(hh, MenuHint{
			Mnemonic:    KeyName(k),
			Description: v.Description,
			Visible:     v.Visible,
		})
	}
	return hh
}

// KeyName returns a display name for a key.
func KeyName(k tcell.Key) string {
	if k == KeySpace {
		return "space"
	}
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return ""
}
