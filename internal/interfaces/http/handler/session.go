package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vellaperfumeria/storefront/internal/application/session"
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront/internal/domain/navigation"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/middleware"
)

// SessionHandler exposes the storefront session engine over HTTP. Every
// mutating endpoint returns the full session snapshot plus the UI
// effects the operation produced
type SessionHandler struct {
	BaseHandler
	registry *session.Registry
}

// NewSessionHandler creates a session handler
func NewSessionHandler(registry *session.Registry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	sessions.POST("", h.Create)
	sessions.GET("/:id", h.Get)
	sessions.POST("/:id/navigate", h.Navigate)
	sessions.POST("/:id/history", h.History)
	sessions.POST("/:id/cart/items", h.AddItem)
	sessions.POST("/:id/cart/buy-now", h.BuyNow)
	sessions.PATCH("/:id/cart/items/:itemID", h.UpdateItem)
	sessions.DELETE("/:id/cart/items/:itemID", h.RemoveItem)
	sessions.DELETE("/:id/cart", h.ClearCart)
	sessions.PUT("/:id/cart/panel", h.SetCartPanel)
	sessions.POST("/:id/checkout", h.Submit)
}

// CreateSessionRequest carries the query string of the URL the visitor
// arrived with, token included
type CreateSessionRequest struct {
	Query string `json:"query"`
}

// NavigateRequest selects a view plus the payload reference it needs
type NavigateRequest struct {
	View      string `json:"view" binding:"required"`
	ProductID int    `json:"product_id"`
	Category  string `json:"category"`
	PostID    int    `json:"post_id"`
}

// HistoryChangeRequest reports a browser-history URL change
type HistoryChangeRequest struct {
	Query string `json:"query"`
}

// AddItemRequest adds a product, with its selected variant, to the cart
type AddItemRequest struct {
	ProductID int               `json:"product_id" binding:"required,min=1"`
	Variant   map[string]string `json:"variant"`
}

// UpdateQuantityRequest sets a cart line's absolute quantity
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartPanelRequest shows or hides the cart panel
type CartPanelRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// CheckoutRequest carries the checkout form. Required-field and payment
// method checks are left to the checkout domain so its field listing
// reaches the client intact
type CheckoutRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Shipping struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Address   string `json:"address"`
		City      string `json:"city"`
		Zip       string `json:"zip"`
		Phone     string `json:"phone"`
	} `json:"shipping"`
	Method string `json:"method"`
	Card   struct {
		Number string `json:"number"`
		Expiry string `json:"expiry"`
		CVC    string `json:"cvc"`
		Name   string `json:"name"`
	} `json:"card"`
	GooglePlay struct {
		AccountEmail string `json:"account_email"`
		AccountName  string `json:"account_name"`
		PromoCode    string `json:"promo_code"`
	} `json:"google_play"`
}

func (r *CheckoutRequest) toForm() *checkout.Form {
	return &checkout.Form{
		Email: r.Email,
		Shipping: checkout.ShippingDetails{
			FirstName: r.Shipping.FirstName,
			LastName:  r.Shipping.LastName,
			Address:   r.Shipping.Address,
			City:      r.Shipping.City,
			Zip:       r.Shipping.Zip,
			Phone:     r.Shipping.Phone,
		},
		Method: checkout.PaymentMethod(r.Method),
		Card: checkout.CardDetails{
			Number: r.Card.Number,
			Expiry: r.Card.Expiry,
			CVC:    r.Card.CVC,
			Name:   r.Card.Name,
		},
		GooglePlay: checkout.GooglePlayDetails{
			AccountEmail: r.GooglePlay.AccountEmail,
			AccountName:  r.GooglePlay.AccountName,
			PromoCode:    r.GooglePlay.PromoCode,
		},
	}
}

// Create starts a new session from an arrival URL
func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	_, result := h.registry.Create(c.Request.Context(), req.Query)
	h.Created(c, result)
}

// Get returns the current session snapshot
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, s.Current())
}

// Navigate changes the current view
func (h *SessionHandler) Navigate(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := s.Navigate(navigation.View(req.View), session.NavigatePayload{
		ProductID: req.ProductID,
		Category:  catalog.CategoryKey(req.Category),
		PostID:    req.PostID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// History applies a browser-history URL change
func (h *SessionHandler) History(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req HistoryChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, s.HandleHistoryChange(req.Query))
}

// AddItem adds a product to the cart and opens the cart panel
func (h *SessionHandler) AddItem(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := s.AddToCart(c.Request.Context(), req.ProductID, req.Variant)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// BuyNow adds a product to the cart and jumps straight to checkout
func (h *SessionHandler) BuyNow(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := s.BuyNow(c.Request.Context(), req.ProductID, req.Variant)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateItem sets a cart line's quantity
func (h *SessionHandler) UpdateItem(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, s.UpdateQuantity(c.Request.Context(), c.Param("itemID"), *req.Quantity))
}

// RemoveItem removes a cart line
func (h *SessionHandler) RemoveItem(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s.RemoveItem(c.Request.Context(), c.Param("itemID")))
}

// ClearCart empties the cart
func (h *SessionHandler) ClearCart(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, s.ClearCart(c.Request.Context()))
}

// SetCartPanel shows or hides the cart panel
func (h *SessionHandler) SetCartPanel(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req CartPanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, s.SetCartOpen(*req.Open))
}

// Submit runs the checkout submission
func (h *SessionHandler) Submit(c *gin.Context) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := s.SubmitOrder(c.Request.Context(), req.toForm())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
