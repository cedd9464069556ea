package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

func validForm() Form {
	return Form{
		Email: "ana@example.com",
		Shipping: ShippingDetails{
			FirstName: "Ana",
			LastName:  "García",
			Address:   "Calle Mayor 1",
			City:      "Madrid",
			Zip:       "28001",
			Phone:     "600123456",
		},
		Method: MethodCard,
	}
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, MethodCard.IsValid())
	assert.True(t, MethodGooglePlay.IsValid())
	assert.False(t, PaymentMethod("paypal").IsValid())

	assert.Equal(t, "Credit Card", MethodCard.Label())
	assert.Equal(t, "Google Play", MethodGooglePlay.Label())
	assert.Equal(t, "Google Play Balance", MethodGooglePlay.Title())
}

func TestForm_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   []string
	}{
		{"complete form", func(f *Form) {}, nil},
		{"blank email", func(f *Form) { f.Email = "" }, []string{"email"}},
		{"blank first name", func(f *Form) { f.Shipping.FirstName = "  " }, []string{"first_name"}},
		{"blank address", func(f *Form) { f.Shipping.Address = "" }, []string{"address"}},
		{"blank phone", func(f *Form) { f.Shipping.Phone = "" }, []string{"phone"}},
		{
			"everything blank",
			func(f *Form) { *f = Form{} },
			[]string{"email", "first_name", "address", "phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			assert.Equal(t, tt.want, f.MissingFields())
		})
	}
}

func TestForm_Validate(t *testing.T) {
	t.Run("accepts complete form", func(t *testing.T) {
		f := validForm()
		assert.NoError(t, f.Validate())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		f := validForm()
		f.Email = ""

		err := f.Validate()
		assert.ErrorIs(t, err, shared.ErrMissingCheckout)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		f := validForm()
		f.Method = "crypto"
		assert.Error(t, f.Validate())
	})

	t.Run("last name is optional", func(t *testing.T) {
		f := validForm()
		f.Shipping.LastName = ""
		assert.NoError(t, f.Validate())
	})
}

func TestForm_LastNameOrPlaceholder(t *testing.T) {
	f := validForm()
	assert.Equal(t, "García", f.LastNameOrPlaceholder())

	f.Shipping.LastName = " "
	assert.Equal(t, ".", f.LastNameOrPlaceholder())
}

func TestForm_CustomerNote(t *testing.T) {
	t.Run("empty for card payments", func(t *testing.T) {
		f := validForm()
		assert.Equal(t, "", f.CustomerNote())
	})

	t.Run("carries wallet details for google play", func(t *testing.T) {
		f := validForm()
		f.Method = MethodGooglePlay
		f.GooglePlay = GooglePlayDetails{
			AccountEmail: "ana@gmail.com",
			AccountName:  "Ana García",
			PromoCode:    "ABCD-1234",
		}

		assert.Equal(t, "Google Play Account: ana@gmail.com - Name: Ana García - Code: ABCD-1234", f.CustomerNote())
	})
}
