package cart

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
)

// Item is a single cart line. It holds an immutable copy of the catalog
// product it was created from; the derived ID is the sole merge/lookup key
type Item struct {
	ID              string            `json:"id"`
	Product         catalog.Product   `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedVariant map[string]string `json:"selected_variant,omitempty"`
}

// ItemID derives the identity key for a cart line from the product ID and
// the chosen variant values. Without a variant the key is the product ID
// itself; with one it is "{productID}-{values joined by '-'}", values in
// sorted order so the key is stable regardless of selection order
func ItemID(product *catalog.Product, variant map[string]string) string {
	id := strconv.Itoa(product.ID)
	if len(variant) == 0 {
		return id
	}

	values := make([]string, 0, len(variant))
	for _, v := range variant {
		values = append(values, v)
	}
	sort.Strings(values)

	return id + "-" + strings.Join(values, "-")
}

// LineTotal returns price x quantity for this line
func (i *Item) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
