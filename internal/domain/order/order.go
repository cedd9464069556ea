package order

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/checkout"
)

// ErrNoReference signals that the remote shop accepted an order but its
// response carried no order id to confirm against
var ErrNoReference = errors.New("order: store returned no order reference")

// The shop ships domestically only
const countryCode = "ES"

// knownIDPrefixes are the internal product-code prefixes stripped when
// normalizing line items to the remote shop's numeric product IDs
var knownIDPrefixes = []string{"wc-", "sim-"}

// Address is a billing or shipping block on an outbound order
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// LineItem is one normalized order line
type LineItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Order is the outbound payload for the remote order-creation call.
// It is created once per submission attempt and never retried
type Order struct {
	Billing            Address    `json:"billing"`
	Shipping           Address    `json:"shipping"`
	LineItems          []LineItem `json:"line_items"`
	PaymentMethod      string     `json:"payment_method"`
	PaymentMethodTitle string     `json:"payment_method_title"`
	CustomerNote       string     `json:"customer_note"`
}

// CreatedOrder is the remote shop's answer to a successful creation
type CreatedOrder struct {
	ID int64 `json:"id"`
}

// Gateway is the remote shop collaborator. Both operations are fallible;
// callers absorb failures into fallback paths instead of surfacing them
type Gateway interface {
	// FetchServerCart loads the server-held cart referenced by a URL token
	FetchServerCart(ctx context.Context, token string) (cart.Cart, error)

	// CreateOrder submits an assembled order
	CreateOrder(ctx context.Context, o *Order) (*CreatedOrder, error)
}

// New assembles an order payload from a cart snapshot and the checkout
// form. The form must already be validated
func New(c *cart.Cart, form *checkout.Form) *Order {
	billing := Address{
		FirstName: form.Shipping.FirstName,
		LastName:  form.LastNameOrPlaceholder(),
		Address1:  form.Shipping.Address,
		City:      form.Shipping.City,
		Postcode:  form.Shipping.Zip,
		Country:   countryCode,
		Email:     form.Email,
		Phone:     form.Shipping.Phone,
	}
	shipping := billing
	shipping.Email = ""
	shipping.Phone = ""

	lines := make([]LineItem, 0, len(c.Items))
	for i := range c.Items {
		lines = append(lines, LineItem{
			ProductID: NormalizeProductID(&c.Items[i].Product),
			Quantity:  c.Items[i].Quantity,
		})
	}

	return &Order{
		Billing:            billing,
		Shipping:           shipping,
		LineItems:          lines,
		PaymentMethod:      form.Method.Label(),
		PaymentMethodTitle: form.Method.Title(),
		CustomerNote:       form.CustomerNote(),
	}
}

// NormalizeProductID maps a catalog product to the remote shop's numeric
// product ID: the product code with any known prefix stripped, falling
// back to the catalog ID when the code is not numeric
func NormalizeProductID(p *catalog.Product) int {
	code := p.Code
	for _, prefix := range knownIDPrefixes {
		code = strings.TrimPrefix(code, prefix)
	}
	if id, err := strconv.Atoi(code); err == nil {
		return id
	}
	return p.ID
}
