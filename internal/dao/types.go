package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/b3/b3t/internal/model1"
)

var (
	// ErrUnknownResource is returned for a resource with no registered accessor.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock is returned when acting on an unavailable line.
	ErrOutOfStock = errors.New("out of stock")
)

// ResourceID identifies a storefront resource type.
type ResourceID struct {
	Service  string // e.g., "storefront"
	Resource string // e.g., "address", "quote"
}

// String returns a string representation in the form "service/resource".
func (r ResourceID) String() string {
	return fmt.Sprintf("%s/%s", r.Service, r.Resource)
}

// Parse parses a string in the form "service/resource" into a ResourceID.
func (r *ResourceID) Parse(s string) error {
	service, resource, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || service == "" || resource == "" || strings.Contains(resource, "/") {
		return fmt.Errorf("invalid resource ID format: %s (expected service/resource)", s)
	}
	r.Service = service
	r.Resource = resource
	return nil
}

// Predefined ResourceID variables for storefront resources.
var (
	AddressRID      = ResourceID{Service: "storefront", Resource: "address"}
	UserRID         = ResourceID{Service: "storefront", Resource: "user"}
	ShoppingListRID = ResourceID{Service: "storefront", Resource: "shoppinglist"}
	QuoteRID        = ResourceID{Service: "storefront", Resource: "quote"}
)

// Factory provides access to the backing catalogue.
type Factory interface {
	Catalog() *Catalog
	Cache() *ResourceCache
	Wait(ctx context.Context) error
}

// Getter retrieves a single record by identity.
type Getter interface {
	Get(ctx context.Context, id string) (model1.Record, error)
}

// Lister retrieves one window of records. Params carry first, offset and
// the optional search, orderBy and sortDirection keys.
type Lister interface {
	List(ctx context.Context, params model1.FilterSnapshot) (model1.PageResult, error)
}

// Accessor combines getting and listing capabilities with initialization.
type Accessor interface {
	Getter
	Lister
	Init(Factory, *ResourceID)
	ResourceID() *ResourceID
}

// Carter adds selected lines to the cart.
type Carter interface {
	AddToCart(ctx context.Context, ids []string) (int, error)
}

// QtyUpdater changes a line quantity.
type QtyUpdater interface {
	SetQty(ctx context.Context, id string, qty int) error
}
