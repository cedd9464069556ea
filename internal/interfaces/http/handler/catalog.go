package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/content"
)

// CatalogHandler serves the read-only product catalog and blog dataset
type CatalogHandler struct {
	BaseHandler
	products catalog.ProductRepository
	posts    content.PostRepository
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(products catalog.ProductRepository, posts content.PostRepository) *CatalogHandler {
	return &CatalogHandler{products: products, posts: posts}
}

// RegisterRoutes registers catalog and blog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/categories", h.ListCategories)
	rg.GET("/catalog/products", h.ListProducts)
	rg.GET("/catalog/products/:id", h.GetProduct)
	rg.GET("/blog/posts", h.ListPosts)
	rg.GET("/blog/posts/:id", h.GetPost)
}

// ListCategories returns the fixed category set
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	h.Success(c, catalog.Categories)
}

// ListProducts returns the catalog, optionally filtered by category
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := catalog.CategoryKey(c.Query("category"))
	if category != "" && !category.IsValid() {
		h.BadRequest(c, "Unknown category: "+category.String())
		return
	}
	h.Success(c, h.products.FindByCategory(category))
}

// GetProduct returns one product by its numeric id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Product id must be numeric")
		return
	}

	product, err := h.products.FindByID(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListPosts returns all blog posts
func (h *CatalogHandler) ListPosts(c *gin.Context) {
	h.Success(c, h.posts.All())
}

// GetPost returns one blog post by its numeric id
func (h *CatalogHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Post id must be numeric")
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}
