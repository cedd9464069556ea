package catalog

// ProductRepository provides read access to the static product catalog
type ProductRepository interface {
	// FindByID returns the product with the given numeric ID, or
	// shared.ErrNotFound if no such product exists
	FindByID(id int) (*Product, error)

	// FindByCategory returns all products in the given category, in
	// catalog order. CategoryAll returns the whole catalog
	FindByCategory(category CategoryKey) []*Product

	// All returns the whole catalog in catalog order
	All() []*Product
}
