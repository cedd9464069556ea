package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
)

func storedCart(t *testing.T) cart.Cart {
	t.Helper()
	p, err := catalog.NewProduct(1, "wc-101", "Sérum", decimal.NewFromFloat(24.90), catalog.CategorySkincare)
	require.NoError(t, err)

	c := cart.New()
	id := c.Add(p, map[string]string{"Tamaño": "30ml"})
	c.UpdateQuantity(id, 2)
	return c
}

func TestInMemoryCartStore_RoundTrip(t *testing.T) {
	store := NewInMemoryCartStore()
	ctx := context.Background()

	saved := storedCart(t)
	require.NoError(t, store.Save(ctx, "sess-1", saved))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, saved.Items[0].ID, loaded.Items[0].ID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.Equal(t, "30ml", loaded.Items[0].SelectedVariant["Tamaño"])
	assert.True(t, loaded.Items[0].Product.Price.Equal(decimal.NewFromFloat(24.90)))
}

func TestInMemoryCartStore_LoadAbsent(t *testing.T) {
	store := NewInMemoryCartStore()

	loaded, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestInMemoryCartStore_LoadCorrupt(t *testing.T) {
	store := NewInMemoryCartStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", storedCart(t)))
	store.Corrupt("sess-1")

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestInMemoryCartStore_SaveReplacesWholeSnapshot(t *testing.T) {
	store := NewInMemoryCartStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", storedCart(t)))
	require.NoError(t, store.Save(ctx, "sess-1", cart.New()))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
	assert.Equal(t, 1, store.Len())
}
