package woocommerce

// ---------------------------------------------------------------------------
// Server cart types
// ---------------------------------------------------------------------------

// ServerCartResponse is the response for the token-referenced cart lookup
type ServerCartResponse struct {
	Token string           `json:"token"`
	Items []ServerCartItem `json:"items"`
}

// ServerCartItem is one line of a server-held cart. Products are carried
// by ID only and resolved against the local catalog
type ServerCartItem struct {
	ProductID int               `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Variant   map[string]string `json:"variant,omitempty"`
}

// ---------------------------------------------------------------------------
// Order creation types
// ---------------------------------------------------------------------------

// OrderCreateResponse is the response for the order-creation call. Only
// the order ID is consumed; everything else the store returns is ignored
type OrderCreateResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Total  string `json:"total,omitempty"`
}

// APIError is an error envelope returned by the store API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
