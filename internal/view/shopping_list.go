// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package view

import (
	"context"
	"fmt"
	"strconv"

	"github.com/derailed/tcell/v2"
	"github.com/shopspring/decimal"

	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model1"
	"github.com/b3/b3t/internal/ui"
)

// ShoppingList browses shopping list lines and edits their quantities.
type ShoppingList struct {
	*Browser
}

// NewShoppingList returns a new shopping list view.
func NewShoppingList(app *App) *ShoppingList {
	rid := dao.ShoppingListRID
	return &ShoppingList{
		Browser: NewBrowser(app, &rid),
	}
}

// Init initializes the view.
func (s *ShoppingList) Init(ctx context.Context) error {
	if err := s.Browser.Init(ctx); err != nil {
		return err
	}
	s.Strategy().Actions().Bulk(ui.KeyMap{
		ui.KeyGreater: ui.NewKeyAction("Qty +1", s.qtyCmd(1), true),
		ui.KeyLess:    ui.NewKeyAction("Qty -1", s.qtyCmd(-1), true),
	})

	return nil
}

func (s *ShoppingList) qtyCmd(delta int) ui.ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		row, _, ok := s.Strategy().Current()
		if !ok {
			return nil
		}
		if row.Disabled() {
			s.app.Flash().Warnf("%s is out of stock", row.Field("sku"))
			return nil
		}
		qty, err := strconv.Atoi(row.Field("qty"))
		if err != nil {
			s.app.Flash().Err(fmt.Errorf("invalid quantity for %s: %w", row.Field("sku"), err))
			return nil
		}
		if qty+delta < 0 {
			return nil
		}
		s.setQty(row.Identity(s.table.IdentityField()), qty+delta)
		return nil
	}
}

// setQty stores a new line quantity and patches the loaded rows in place,
// keeping the selection.
func (s *ShoppingList) setQty(id string, qty int) {
	s.Run("qty", func(ctx context.Context) error {
		acc, err := dao.AccessorFor(s.app.GetFactory(), s.rid)
		if err != nil {
			return err
		}
		upd, ok := acc.(dao.QtyUpdater)
		if !ok {
			return fmt.Errorf("%s does not support quantity updates", s.rid)
		}
		if err := upd.SetQty(ctx, id, qty); err != nil {
			s.app.Flash().Err(err)
			return err
		}
		s.table.SetList(withQty(s.table.GetList(), s.table.IdentityField(), id, qty))

		return nil
	})
}

// withQty returns a copy of rows with the quantity and total of one line updated.
func withQty(rows model1.Rows, field, id string, qty int) model1.Rows {
	out := make(model1.Rows, 0, len(rows))
	for _, r := range rows {
		if r.Identity(field) != id {
			out = append(out, r)
			continue
		}
		r = r.With("qty", qty)
		if price, err := decimal.NewFromString(r.Field("unitPrice")); err == nil {
			r = r.With("total", price.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2))
		}
		out = append(out, r)
	}

	return out
}
