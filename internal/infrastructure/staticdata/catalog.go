package staticdata

import (
	"github.com/shopspring/decimal"

	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

// CatalogRepository serves the static product catalog from memory.
// The dataset is fixed at startup and read-only afterwards, so lookups
// need no locking
type CatalogRepository struct {
	products []*catalog.Product
	byID     map[int]*catalog.Product
}

// NewCatalogRepository creates a repository over the given products,
// preserving their order
func NewCatalogRepository(products []*catalog.Product) *CatalogRepository {
	byID := make(map[int]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogRepository{
		products: products,
		byID:     byID,
	}
}

// NewDefaultCatalogRepository creates a repository seeded with the shop's
// built-in catalog
func NewDefaultCatalogRepository() *CatalogRepository {
	return NewCatalogRepository(defaultProducts())
}

// FindByID implements catalog.ProductRepository
func (r *CatalogRepository) FindByID(id int) (*catalog.Product, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

// FindByCategory implements catalog.ProductRepository
func (r *CatalogRepository) FindByCategory(category catalog.CategoryKey) []*catalog.Product {
	if category == catalog.CategoryAll || category == "" {
		return r.All()
	}
	var matched []*catalog.Product
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// All implements catalog.ProductRepository
func (r *CatalogRepository) All() []*catalog.Product {
	out := make([]*catalog.Product, len(r.products))
	copy(out, r.products)
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultProducts() []*catalog.Product {
	return []*catalog.Product{
		{
			ID: 1, Code: "wc-101", Name: "Sérum Vitamina C", Price: price("24.90"),
			ImageURL: "/img/serum-vitamina-c.jpg", Category: catalog.CategorySkincare,
			Description: "Sérum iluminador con vitamina C pura al 15%.",
		},
		{
			ID: 2, Code: "wc-102", Name: "Crema Hidratante Noche", Price: price("19.50"),
			ImageURL: "/img/crema-noche.jpg", Category: catalog.CategorySkincare,
		},
		{
			ID: 3, Code: "wc-103", Name: "Labial Mate Intenso", Price: price("12.50"),
			ImageURL: "/img/labial-mate.jpg", Category: catalog.CategoryMakeup,
			Variants: []catalog.VariantAxis{
				{Name: "Tono", Values: []string{"Rojo", "Nude", "Coral"}},
			},
		},
		{
			ID: 4, Code: "wc-104", Name: "Máscara de Pestañas Volumen", Price: price("14.90"),
			ImageURL: "/img/mascara-pestanas.jpg", Category: catalog.CategoryMakeup,
		},
		{
			ID: 5, Code: "wc-105", Name: "Eau de Parfum Nuit", Price: price("39.00"),
			ImageURL: "/img/edp-nuit.jpg", Category: catalog.CategoryPerfume,
			Variants: []catalog.VariantAxis{
				{Name: "Tamaño", Values: []string{"30ml", "50ml", "100ml"}},
			},
		},
		{
			ID: 6, Code: "wc-106", Name: "Agua de Colonia Fresca", Price: price("22.00"),
			ImageURL: "/img/colonia-fresca.jpg", Category: catalog.CategoryPerfume,
		},
		{
			ID: 7, Code: "wc-107", Name: "Aceite Corporal Relajante", Price: price("16.75"),
			ImageURL: "/img/aceite-corporal.jpg", Category: catalog.CategoryWellness,
		},
		{
			ID: 8, Code: "sim-108", Name: "Set Mini Tallas Viaje", Price: price("9.95"),
			ImageURL: "/img/set-viaje.jpg", Category: catalog.CategoryWellness,
			IsShippingSaver: true,
			Description:     "Set de viaje con envío gratuito incluido.",
		},
	}
}
