package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryKey_IsValid(t *testing.T) {
	tests := []struct {
		key     CategoryKey
		isValid bool
	}{
		{CategoryAll, true},
		{CategorySkincare, true},
		{CategoryMakeup, true},
		{CategoryPerfume, true},
		{CategoryWellness, true},
		{CategoryKey("electronics"), false},
		{CategoryKey(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.key.IsValid())
		})
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		p, err := NewProduct(7, "VP-007", "Eau de Parfum", decimal.NewFromFloat(29.90), CategoryPerfume)
		require.NoError(t, err)
		assert.Equal(t, 7, p.ID)
		assert.Equal(t, "Eau de Parfum", p.Name)
		assert.True(t, p.Price.Equal(decimal.NewFromFloat(29.90)))
		assert.False(t, p.HasVariants())
	})

	t.Run("rejects non-positive ID", func(t *testing.T) {
		_, err := NewProduct(0, "X", "Name", decimal.NewFromInt(1), CategoryMakeup)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(1, "X", "", decimal.NewFromInt(1), CategoryMakeup)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(1, "X", "Name", decimal.NewFromInt(-1), CategoryMakeup)
		assert.Error(t, err)
	})

	t.Run("rejects the aggregate category", func(t *testing.T) {
		_, err := NewProduct(1, "X", "Name", decimal.NewFromInt(1), CategoryAll)
		assert.Error(t, err)
	})
}

func TestProduct_HasVariants(t *testing.T) {
	p, err := NewProduct(3, "VP-003", "Labial Mate", decimal.NewFromFloat(12.50), CategoryMakeup)
	require.NoError(t, err)

	assert.False(t, p.HasVariants())
	p.Variants = []VariantAxis{{Name: "Tono", Values: []string{"Rojo", "Nude"}}}
	assert.True(t, p.HasVariants())
}
