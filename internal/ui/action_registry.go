// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package ui

import (
	"context"
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// BulkHandler applies an action to the selected row identities and returns a
// status message.
type BulkHandler func(ctx context.Context, ids []string) (string, error)

// ResourceAction represents an action that can be performed on a selection.
type ResourceAction struct {
	Key         tcell.Key   // Key binding
	Name        string      // Display name
	Description string      // Short description
	Dangerous   bool        // Requires confirmation
	Handler     BulkHandler
}

var (
	actionRegistry = map[string][]ResourceAction{}
	registryMx     sync.RWMutex
)

// RegisterActions registers actions for a resource type.
func RegisterActions(resource string, actions []ResourceAction) {
	registryMx.Lock()
	defer registryMx.Unlock()

	actionRegistry[resource] = actions
}

// GetActions returns available actions for a resource type.
func GetActions(resource string) []ResourceAction {
	registryMx.RLock()
	defer registryMx.RUnlock()

	aa := append([]ResourceAction(nil), actionRegistry[resource]...)
	sort.Slice(aa, func(i, j int) bool { return aa[i].Key < aa[j].Key })

	return aa
}

// GetAction returns a specific action by key for a resource type.
func GetAction(resource string, key tcell.Key) *ResourceAction {
	actions := GetActions(resource)
	for i := range actions {
		if actions[i].Key == key {
			return &actions[i]
		}
	}
	return nil
}
