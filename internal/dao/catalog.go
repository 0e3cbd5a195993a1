package dao

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/b3/b3t/internal/config/data"
	"github.com/b3/b3t/internal/model1"
)

// DefaultCurrency is used when a catalogue does not name one.
const DefaultCurrency = "EUR"

// Address is a customer postal address.
type Address struct {
	ID       string `yaml:"id"`
	Company  string `yaml:"company"`
	Street   string `yaml:"street"`
	City     string `yaml:"city"`
	Postcode string `yaml:"postcode"`
	Country  string `yaml:"country"`
	Default  bool   `yaml:"default"`
}

// User is a storefront account.
type User struct {
	ID        string `yaml:"id"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Role      string `yaml:"role"`
	Active    bool   `yaml:"active"`
}

// ShoppingListItem is a line of the shopping list.
type ShoppingListItem struct {
	ID        string          `yaml:"id"`
	SKU       string          `yaml:"sku"`
	Name      string          `yaml:"name"`
	Qty       int             `yaml:"qty"`
	UnitPrice decimal.Decimal `yaml:"unitPrice"`
	InStock   bool            `yaml:"inStock"`
}

// QuoteLine is a priced line of a quote.
type QuoteLine struct {
	SKU   string          `yaml:"sku"`
	Name  string          `yaml:"name"`
	Qty   int             `yaml:"qty"`
	Price decimal.Decimal `yaml:"price"`
}

// Quote is a negotiated offer.
type Quote struct {
	ID       string      `yaml:"id"`
	Number   string      `yaml:"number"`
	Customer string      `yaml:"customer"`
	Status   string      `yaml:"status"`
	Created  string      `yaml:"created"`
	Lines    []QuoteLine `yaml:"lines"`
}

// Total sums the quote lines.
func (q Quote) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range q.Lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	return total
}

// Catalog is the in-memory storefront data set.
type Catalog struct {
	Currency     string             `yaml:"currency"`
	Addresses    []Address          `yaml:"addresses"`
	Users        []User             `yaml:"users"`
	ShoppingList []ShoppingListItem `yaml:"shoppingList"`
	Quotes       []Quote            `yaml:"quotes"`

	cart map[string]int
	mx   sync.RWMutex
}

// LoadCatalog reads a catalogue file.
func LoadCatalog(path string) (*Catalog, error) {
	var c Catalog
	if err := data.MustLoadYAML(path, &c); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}

	return &c, nil
}

// Save writes the catalogue to a file.
func (c *Catalog) Save(path string) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return data.SaveYAML(path, c)
}

// Records returns a snapshot of the records of a resource.
func (c *Catalog) Records(rid *ResourceID) ([]model1.Record, error) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	var out []model1.Record
	switch rid.String() {
	case AddressRID.String():
		for _, a := range c.Addresses {
			out = append(out, addressRecord(a))
		}
	case UserRID.String():
		for _, u := range c.Users {
			out = append(out, userRecord(u))
		}
	case ShoppingListRID.String():
		for _, i := range c.ShoppingList {
			out = append(out, itemRecord(i, c.currency()))
		}
	case QuoteRID.String():
		for _, q := range c.Quotes {
			out = append(out, quoteRecord(q, c.currency()))
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, rid)
	}

	return out, nil
}

// SetQty changes the quantity of a shopping list line.
func (c *Catalog) SetQty(id string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("invalid quantity %d", qty)
	}

	c.mx.Lock()
	defer c.mx.Unlock()

	for i := range c.ShoppingList {
		if c.ShoppingList[i].ID == id {
			c.ShoppingList[i].Qty = qty
			return nil
		}
	}

	return fmt.Errorf("shopping list line %q: %w", id, ErrNotFound)
}

// AddToCart moves shopping list lines into the cart. Out of stock and
// zero quantity lines are skipped. It returns the number of lines added.
func (c *Catalog) AddToCart(ids []string) (int, error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.cart == nil {
		c.cart = make(map[string]int)
	}
	var added int
	for _, id := range ids {
		item, ok := c.item(id)
		if !ok {
			return added, fmt.Errorf("shopping list line %q: %w", id, ErrNotFound)
		}
		if !item.InStock || item.Qty == 0 {
			continue
		}
		c.cart[item.SKU] += item.Qty
		added++
	}

	return added, nil
}

// Cart returns the cart content keyed by SKU.
func (c *Catalog) Cart() map[string]int {
	c.mx.RLock()
	defer c.mx.RUnlock()

	out := make(map[string]int, len(c.cart))
	for k, v := range c.cart {
		out[k] = v
	}
	return out
}

func (c *Catalog) item(id string) (ShoppingListItem, bool) {
	for _, i := range c.ShoppingList {
		if i.ID == id {
			return i, true
		}
	}
	return ShoppingListItem{}, false
}

func (c *Catalog) currency() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

func addressRecord(a Address) model1.Record {
	return model1.Record{
		"id":       a.ID,
		"company":  a.Company,
		"street":   a.Street,
		"city":     a.City,
		"postcode": a.Postcode,
		"country":  a.Country,
		"default":  a.Default,
	}
}

func userRecord(u User) model1.Record {
	return model1.Record{
		"id":        u.ID,
		"email":     u.Email,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"name":      u.FirstName + " " + u.LastName,
		"role":      u.Role,
		"active":    u.Active,
	}
}

func itemRecord(i ShoppingListItem, currency string) model1.Record {
	return model1.Record{
		"id":                 i.ID,
		"sku":                i.SKU,
		"name":               i.Name,
		"qty":                i.Qty,
		"unitPrice":          i.UnitPrice.StringFixed(2),
		"total":              i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty))).StringFixed(2),
		"currency":           currency,
		"inStock":            i.InStock,
		model1.DisabledField: !i.InStock,
	}
}

func quoteRecord(q Quote, currency string) model1.Record {
	lines := make([]any, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, map[string]any{
			"sku":   l.SKU,
			"name":  l.Name,
			"qty":   l.Qty,
			"price": l.Price.StringFixed(2),
		})
	}
	return model1.Record{
		"id":        q.ID,
		"number":    q.Number,
		"customer":  q.Customer,
		"status":    q.Status,
		"created":   q.Created,
		"total":     q.Total().StringFixed(2),
		"currency":  currency,
		"lines":     lines,
		"lineCount": len(q.Lines),
	}
}

var (
	seedCities    = []string{"Berlin", "Lyon", "Porto", "Gdansk", "Ghent", "Turin", "Malmo"}
	seedCountries = []string{"DE", "FR", "PT", "PL", "BE", "IT", "SE"}
	seedFirst     = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Ken", "Radia", "Donald"}
	seedLast      = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Thompson", "Perlman", "Knuth"}
	seedProducts  = []string{"Drill", "Hammer", "Saw", "Wrench", "Pliers", "Level", "Chisel", "Clamp", "Sander", "Router"}
	seedStatus    = []string{"draft", "submitted", "accepted", "declined", "expired"}
)

// SeedCatalog returns the built-in demo catalogue.
func SeedCatalog() *Catalog {
	c := Catalog{Currency: DefaultCurrency}
	for i := 1; i <= 42; i++ {
		c.Addresses = append(c.Addresses, Address{
			ID:       strconv.Itoa(i),
			Company:  fmt.Sprintf("%s GmbH", seedLast[i%len(seedLast)]),
			Street:   fmt.Sprintf("%d Market Street", i*3),
			City:     seedCities[i%len(seedCities)],
			Postcode: fmt.Sprintf("%05d", 10000+i*37),
			Country:  seedCountries[i%len(seedCountries)],
			Default:  i == 1,
		})
	}
	for i := 1; i <= 27; i++ {
		c.Users = append(c.Users, User{
			ID:        strconv.Itoa(i),
			Email:     fmt.Sprintf("user%02d@b3t.example", i),
			FirstName: seedFirst[i%len(seedFirst)],
			LastName:  seedLast[(i*3)%len(seedLast)],
			Role:      []string{"buyer", "approver", "admin"}[i%3],
			Active:    i%5 != 0,
		})
	}
	for i := 1; i <= 18; i++ {
		c.ShoppingList = append(c.ShoppingList, ShoppingListItem{
			ID:        strconv.Itoa(i),
			SKU:       fmt.Sprintf("SKU-%04d", 100+i),
			Name:      fmt.Sprintf("%s %d", seedProducts[i%len(seedProducts)], i),
			Qty:       i % 4,
			UnitPrice: decimal.New(int64(995+i*250), -2),
			InStock:   i%6 != 0,
		})
	}
	for i := 1; i <= 33; i++ {
		q := Quote{
			ID:       strconv.Itoa(i),
			Number:   fmt.Sprintf("Q-%05d", 2000+i),
			Customer: fmt.Sprintf("%s GmbH", seedLast[(i*5)%len(seedLast)]),
			Status:   seedStatus[i%len(seedStatus)],
			Created:  fmt.Sprintf("2026-%02d-%02d", 1+i%9, 1+i%27),
		}
		for j := 0; j <= i%3; j++ {
			q.Lines = append(q.Lines, QuoteLine{
				SKU:   fmt.Sprintf("SKU-%04d", 100+(i+j)%18+1),
				Name:  seedProducts[(i+j)%len(seedProducts)],
				Qty:   1 + j,
				Price: decimal.New(int64(1200+i*75+j*10), -2),
			})
		}
		c.Quotes = append(c.Quotes, q)
	}

	return &c
}

// SortedSKUs returns the cart SKUs in order.
func SortedSKUs(cart map[string]int) []string {
	out := make([]string, 0, len(cart))
	for k := range cart {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
