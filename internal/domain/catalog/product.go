package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

// CategoryKey identifies a product category in the fixed catalog set
type CategoryKey string

const (
	CategoryAll      CategoryKey = "all"
	CategorySkincare CategoryKey = "skincare"
	CategoryMakeup   CategoryKey = "makeup"
	CategoryPerfume  CategoryKey = "perfume"
	CategoryWellness CategoryKey = "wellness"
)

// IsValid checks if the key belongs to the fixed category set
func (k CategoryKey) IsValid() bool {
	switch k {
	case CategoryAll, CategorySkincare, CategoryMakeup, CategoryPerfume, CategoryWellness:
		return true
	}
	return false
}

// String returns the string representation of CategoryKey
func (k CategoryKey) String() string {
	return string(k)
}

// Category pairs a category key with its display name
type Category struct {
	Key  CategoryKey `json:"key"`
	Name string      `json:"name"`
}

// Categories is the fixed, ordered category set shown by the shop
var Categories = []Category{
	{Key: CategoryAll, Name: "Todos"},
	{Key: CategorySkincare, Name: "Facial"},
	{Key: CategoryMakeup, Name: "Maquillaje"},
	{Key: CategoryPerfume, Name: "Fragancias"},
	{Key: CategoryWellness, Name: "Wellness"},
}

// VariantAxis describes one selectable product option (e.g. "Tono")
// with the values a customer can choose from
type VariantAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is a read-only catalog entry. The session engine never mutates
// products; carts hold immutable references into the catalog
type Product struct {
	ID              int             `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
	Category        CategoryKey     `json:"category"`
	IsShippingSaver bool            `json:"is_shipping_saver,omitempty"`
	Variants        []VariantAxis   `json:"variants,omitempty"`
}

// NewProduct creates a catalog product
func NewProduct(id int, code, name string, price decimal.Decimal, category CategoryKey) (*Product, error) {
	if id <= 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID must be positive")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if !category.IsValid() || category == CategoryAll {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category must be a concrete catalog category")
	}

	return &Product{
		ID:       id,
		Code:     code,
		Name:     name,
		Price:    price,
		Category: category,
	}, nil
}

// HasVariants returns true if the product offers selectable options
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}
