package navigation

import (
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/content"
)

// State is the current view plus its view-specific payload. Exactly one
// payload field is set, matching the view: Product for productDetail,
// Category for products, Post for blogPost, none otherwise. States are
// always replaced whole, never partially mutated
type State struct {
	Current  View                `json:"current"`
	Product  *catalog.Product    `json:"product,omitempty"`
	Category catalog.CategoryKey `json:"category,omitempty"`
	Post     *content.Post       `json:"post,omitempty"`
}

// Home returns the default state
func Home() State {
	return State{Current: ViewHome}
}

// Products returns the listing state for a category
func Products(category catalog.CategoryKey) State {
	return State{Current: ViewProducts, Category: category}
}

// ProductDetail returns the detail state for a product
func ProductDetail(product *catalog.Product) State {
	return State{Current: ViewProductDetail, Product: product}
}

// BlogPost returns the reading state for a post
func BlogPost(post *content.Post) State {
	return State{Current: ViewBlogPost, Post: post}
}

// Plain returns a payload-free state for the given view. Unknown views
// fall back to home
func Plain(view View) State {
	if !view.IsValid() {
		return Home()
	}
	return State{Current: view}
}

// Equal reports payload-aware equivalence. Object payloads compare by
// identifier, so a state reconstructed from a URL by catalog lookup is
// equal to the state that produced the URL
func (s State) Equal(other State) bool {
	if s.Current != other.Current {
		return false
	}
	switch s.Current {
	case ViewProductDetail:
		return s.Product != nil && other.Product != nil && s.Product.ID == other.Product.ID
	case ViewProducts:
		return s.Category == other.Category
	case ViewBlogPost:
		return s.Post != nil && other.Post != nil && s.Post.ID == other.Post.ID
	}
	return true
}
