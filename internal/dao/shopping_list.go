package dao

import (
	"context"
	"fmt"
)

func init() {
	RegisterAccessor(&ShoppingListRID, &ShoppingList{})
}

var (
	_ Carter     = (*ShoppingList)(nil)
	_ QtyUpdater = (*ShoppingList)(nil)
)

// ShoppingList is the DAO for shopping list lines. Its edges come wrapped
// in a node envelope and out of stock lines cannot be checked.
type ShoppingList struct {
	StoreResource
}

// Init initializes the DAO.
func (s *ShoppingList) Init(f Factory, rid *ResourceID) {
	s.StoreResource.Init(f, rid)
	s.wrapEdges()
}

// SetQty changes a line quantity.
func (s *ShoppingList) SetQty(ctx context.Context, id string, qty int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := s.getFactory()
	if f == nil {
		return fmt.Errorf("factory not initialized")
	}
	defer s.invalidate()

	return f.Catalog().SetQty(id, qty)
}

// AddToCart adds the given lines to the cart.
func (s *ShoppingList) AddToCart(ctx context.Context, ids []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f := s.getFactory()
	if f == nil {
		return 0, fmt.Errorf("factory not initialized")
	}

	n, err := f.Catalog().AddToCart(ids)
	if err != nil {
		return n, fmt.Errorf("add to cart: %w", err)
	}
	if n < len(ids) {
		return n, fmt.Errorf("%d line(s) skipped: %w", len(ids)-n, ErrOutOfStock)
	}

	return n, nil
}
