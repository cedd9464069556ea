package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
)

func testProduct(t *testing.T, id int, price float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, "VP-TEST", "Test Product", decimal.NewFromFloat(price), catalog.CategorySkincare)
	require.NoError(t, err)
	return p
}

func TestItemID(t *testing.T) {
	p := &catalog.Product{ID: 42}

	tests := []struct {
		name    string
		variant map[string]string
		want    string
	}{
		{"no variant", nil, "42"},
		{"empty variant", map[string]string{}, "42"},
		{"single axis", map[string]string{"Tono": "Rojo"}, "42-Rojo"},
		{"values sorted for stability", map[string]string{"Tono": "Rojo", "Tamano": "30ml"}, "42-30ml-Rojo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemID(p, tt.variant))
		})
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("appends new line with quantity one", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), nil)

		assert.Equal(t, "1", id)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})

	t.Run("merges identical product and variant into one line", func(t *testing.T) {
		c := New()
		p := testProduct(t, 1, 10)
		variant := map[string]string{"Tono": "Nude"}

		c.Add(p, variant)
		c.Add(p, variant)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("different variants create separate lines", func(t *testing.T) {
		c := New()
		p := testProduct(t, 1, 10)

		c.Add(p, map[string]string{"Tono": "Nude"})
		c.Add(p, map[string]string{"Tono": "Rojo"})

		assert.Len(t, c.Items, 2)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, 3, 5), nil)
		c.Add(testProduct(t, 1, 5), nil)
		c.Add(testProduct(t, 2, 5), nil)

		require.Len(t, c.Items, 3)
		assert.Equal(t, "3", c.Items[0].ID)
		assert.Equal(t, "1", c.Items[1].ID)
		assert.Equal(t, "2", c.Items[2].ID)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("sets absolute quantity", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), nil)

		c.UpdateQuantity(id, 5)

		item, ok := c.Find(id)
		require.True(t, ok)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), nil)

		c.UpdateQuantity(id, 0)

		assert.True(t, c.IsEmpty())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), nil)

		c.UpdateQuantity(id, -3)

		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		c := New()
		c.Add(testProduct(t, 1, 10), nil)

		c.UpdateQuantity("missing", 7)
		c.UpdateQuantity("missing", 0)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("equivalent to update with zero and idempotent", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), nil)

		c.Remove(id)
		c.Remove(id)

		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(testProduct(t, 1, 10), nil)
	c.Add(testProduct(t, 2, 20), nil)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}

func TestCart_Clone(t *testing.T) {
	t.Run("mutating the original never reaches the clone", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), map[string]string{"Tono": "Rojo"})

		clone := c.Clone()

		c.UpdateQuantity(id, 9)
		c.Items[0].SelectedVariant["Tono"] = "Nude"
		c.Add(testProduct(t, 2, 20), nil)

		require.Len(t, clone.Items, 1)
		assert.Equal(t, 1, clone.Items[0].Quantity)
		assert.Equal(t, "Rojo", clone.Items[0].SelectedVariant["Tono"])
	})

	t.Run("mutating the clone never reaches the original", func(t *testing.T) {
		c := New()
		id := c.Add(testProduct(t, 1, 10), nil)

		clone := c.Clone()
		clone.UpdateQuantity(id, 4)
		clone.Clear()

		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})

	t.Run("empty cart clones empty", func(t *testing.T) {
		c := New()
		clone := c.Clone()
		assert.True(t, clone.IsEmpty())
	})
}

func TestCart_ItemCount(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.ItemCount())

	p := testProduct(t, 1, 10)
	c.Add(p, nil)
	c.Add(p, nil)
	c.Add(testProduct(t, 2, 20), nil)

	assert.Equal(t, 3, c.ItemCount())
}

func TestCart_HasShippingSaver(t *testing.T) {
	c := New()
	c.Add(testProduct(t, 1, 10), nil)
	assert.False(t, c.HasShippingSaver())

	saver := testProduct(t, 2, 15)
	saver.IsShippingSaver = true
	c.Add(saver, nil)
	assert.True(t, c.HasShippingSaver())
}

func TestItem_LineTotal(t *testing.T) {
	c := New()
	id := c.Add(testProduct(t, 1, 12.50), nil)
	c.UpdateQuantity(id, 3)

	item, ok := c.Find(id)
	require.True(t, ok)
	assert.True(t, item.LineTotal().Equal(decimal.NewFromFloat(37.50)))
}
