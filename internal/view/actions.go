// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package view

import (
	"context"
	"fmt"

	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/ui"
)

// registerActions binds the bulk actions of each resource to the factory.
func registerActions(f dao.Factory) {
	ui.RegisterActions(dao.ShoppingListRID.String(), []ui.ResourceAction{
		{
			Key:         ui.KeyShiftC,
			Name:        "Add to cart",
			Description: "Move the selected lines into the cart",
			Dangerous:   true,
			Handler:     addToCart(f),
		},
	})
}

func addToCart(f dao.Factory) ui.BulkHandler {
	return func(ctx context.Context, ids []string) (string, error) {
		acc, err := dao.AccessorFor(f, &dao.ShoppingListRID)
		if err != nil {
			return "", err
		}
		carter, ok := acc.(dao.Carter)
		if !ok {
			return "", fmt.Errorf("%s does not support add to cart", dao.ShoppingListRID)
		}
		n, err := carter.AddToCart(ctx, ids)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d line(s) added to cart", n), nil
	}
}
