package cart

import (
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
)

// Cart is the ordered collection of cart lines for one session.
// Insertion order is preserved for display. All mutations are total:
// they never fail, and operations on an absent line are no-ops
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart
func New() Cart {
	return Cart{}
}

// Add merges a product (with an optional variant selection) into the cart.
// If a line with the same derived ID already exists its quantity is
// incremented by one, otherwise a new line with quantity 1 is appended.
// Returns the affected line's ID
func (c *Cart) Add(product *catalog.Product, variant map[string]string) string {
	id := ItemID(product, variant)
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity++
			return id
		}
	}

	c.Items = append(c.Items, Item{
		ID:              id,
		Product:         *product,
		Quantity:        1,
		SelectedVariant: variant,
	})
	return id
}

// UpdateQuantity sets a line's quantity to exactly the given value.
// A value of zero or less removes the line. Unknown IDs are a no-op
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.remove(itemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes a line. Equivalent to UpdateQuantity(itemID, 0)
func (c *Cart) Remove(itemID string) {
	c.remove(itemID)
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.Items = nil
}

// Clone returns a deep copy of the cart. Snapshots hand out clones so a
// caller's copy is never reached by later mutations of the live cart
func (c *Cart) Clone() Cart {
	if len(c.Items) == 0 {
		return New()
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if len(items[i].SelectedVariant) > 0 {
			variant := make(map[string]string, len(items[i].SelectedVariant))
			for k, v := range items[i].SelectedVariant {
				variant[k] = v
			}
			items[i].SelectedVariant = variant
		}
	}
	return Cart{Items: items}
}

// Find returns the line with the given ID
func (c *Cart) Find(itemID string) (*Item, bool) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the total quantity across all lines (the cart badge)
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// HasShippingSaver returns true if any line's product waives shipping
func (c *Cart) HasShippingSaver() bool {
	for i := range c.Items {
		if c.Items[i].Product.IsShippingSaver {
			return true
		}
	}
	return false
}

func (c *Cart) remove(itemID string) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
