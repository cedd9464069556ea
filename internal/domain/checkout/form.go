package checkout

import (
	"fmt"
	"strings"

	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

// PaymentMethod is the closed set of supported payment methods
type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodGooglePlay PaymentMethod = "google_play"
)

// IsValid checks if the method belongs to the supported set
func (m PaymentMethod) IsValid() bool {
	return m == MethodCard || m == MethodGooglePlay
}

// Label returns the payment method label sent on orders
func (m PaymentMethod) Label() string {
	if m == MethodGooglePlay {
		return "Google Play"
	}
	return "Credit Card"
}

// Title returns the customer-facing payment method title
func (m PaymentMethod) Title() string {
	if m == MethodGooglePlay {
		return "Google Play Balance"
	}
	return "Credit Card"
}

// ShippingDetails is the shipping identity block of the checkout form
type ShippingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
}

// CardDetails are the raw card fields. They are forwarded as opaque data,
// never validated as a real card and never persisted
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
	Name   string `json:"name"`
}

// GooglePlayDetails are the wallet-account fields for the alternate method
type GooglePlayDetails struct {
	AccountEmail string `json:"account_email"`
	AccountName  string `json:"account_name"`
	PromoCode    string `json:"promo_code"`
}

// Form carries everything the customer typed at checkout. Held in memory
// only; it is never written to durable storage
type Form struct {
	Email      string            `json:"email"`
	Shipping   ShippingDetails   `json:"shipping"`
	Method     PaymentMethod     `json:"method"`
	Card       CardDetails       `json:"card"`
	GooglePlay GooglePlayDetails `json:"google_play"`
}

// MissingFields returns the required fields that are still blank:
// email, shipping first name, shipping address and shipping phone
func (f *Form) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Shipping.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(f.Shipping.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(f.Shipping.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// Validate checks required fields and the payment method. A validation
// failure blocks submission before any remote call is made
func (f *Form) Validate() error {
	if missing := f.MissingFields(); len(missing) > 0 {
		return shared.ErrMissingCheckout.WithMessage(
			fmt.Sprintf("Required checkout fields are missing: %s", strings.Join(missing, ", ")))
	}
	if !f.Method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be card or google_play")
	}
	return nil
}

// LastNameOrPlaceholder returns the shipping last name, defaulting to a
// single-character placeholder when blank
func (f *Form) LastNameOrPlaceholder() string {
	if strings.TrimSpace(f.Shipping.LastName) == "" {
		return "."
	}
	return f.Shipping.LastName
}

// CustomerNote builds the free-text order note. Only the Google Play
// method carries one, concatenating the wallet email, holder name and
// any promotional code entered
func (f *Form) CustomerNote() string {
	if f.Method != MethodGooglePlay {
		return ""
	}
	return fmt.Sprintf("Google Play Account: %s - Name: %s - Code: %s",
		f.GooglePlay.AccountEmail, f.GooglePlay.AccountName, f.GooglePlay.PromoCode)
}
