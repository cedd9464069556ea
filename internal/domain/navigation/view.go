package navigation

// View is one member of the fixed set of navigable storefront screens
type View string

const (
	ViewHome            View = "home"
	ViewProducts        View = "products"
	ViewProductDetail   View = "productDetail"
	ViewOfertas         View = "ofertas"
	ViewIA              View = "ia"
	ViewCatalog         View = "catalog"
	ViewBlog            View = "blog"
	ViewBlogPost        View = "blogPost"
	ViewCheckoutSummary View = "checkoutSummary"
)

// IsValid checks if the view belongs to the navigable set
func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewProducts, ViewProductDetail, ViewOfertas, ViewIA,
		ViewCatalog, ViewBlog, ViewBlogPost, ViewCheckoutSummary:
		return true
	}
	return false
}

// String returns the string representation of View
func (v View) String() string {
	return string(v)
}
