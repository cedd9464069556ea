package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/order"
)

// maxResponseSize is the maximum allowed response size from the store API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Errors returned by the WooCommerce client
var (
	ErrStoreUnavailable   = errors.New("woocommerce: store unreachable")
	ErrStoreRequestFailed = errors.New("woocommerce: store rejected request")
	ErrNoOrderID          = order.ErrNoReference
)

// Client implements order.Gateway against a WooCommerce store.
// Server-cart items arrive as product IDs and are resolved against the
// local catalog; unknown products are dropped from the rebuilt cart
type Client struct {
	config     *Config
	httpClient *http.Client
	products   catalog.ProductRepository
}

// NewClient creates a WooCommerce client with the given configuration
func NewClient(config *Config, products catalog.ProductRepository) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		products: products,
	}, nil
}

// FetchServerCart implements order.Gateway. An unknown token yields an
// empty cart rather than an error; transport and decode failures are
// returned for the caller's fallback path
func (c *Client) FetchServerCart(ctx context.Context, token string) (cart.Cart, error) {
	endpoint := fmt.Sprintf("%s/cart?token=%s", c.config.BaseURL, url.QueryEscape(token))

	body, status, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return cart.New(), err
	}
	if status == http.StatusNotFound {
		return cart.New(), nil
	}
	if status >= 400 {
		return cart.New(), fmt.Errorf("%w: HTTP %d", ErrStoreRequestFailed, status)
	}

	var resp ServerCartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return cart.New(), fmt.Errorf("woocommerce: malformed cart response: %w", err)
	}

	return c.rebuildCart(resp.Items), nil
}

// CreateOrder implements order.Gateway
func (c *Client) CreateOrder(ctx context.Context, o *order.Order) (*order.CreatedOrder, error) {
	payload, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("woocommerce: failed to serialize order: %w", err)
	}

	endpoint := c.config.BaseURL + "/orders"
	body, status, err := c.doRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		var apiErr APIError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrStoreRequestFailed, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", ErrStoreRequestFailed, status)
	}

	var resp OrderCreateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("woocommerce: malformed order response: %w", err)
	}
	if resp.ID == 0 {
		return nil, ErrNoOrderID
	}

	return &order.CreatedOrder{ID: resp.ID}, nil
}

// rebuildCart resolves server cart lines against the catalog, preserving
// line order and clamping quantities to at least one
func (c *Client) rebuildCart(items []ServerCartItem) cart.Cart {
	rebuilt := cart.New()
	for _, item := range items {
		product, err := c.products.FindByID(item.ProductID)
		if err != nil {
			continue
		}
		id := rebuilt.Add(product, item.Variant)
		if item.Quantity > 1 {
			rebuilt.UpdateQuantity(id, item.Quantity)
		}
	}
	return rebuilt
}

// doRequest performs an HTTP request against the store API
func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("woocommerce: failed to create request: %w", err)
	}
	req.SetBasicAuth(c.config.ConsumerKey, c.config.ConsumerSecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("woocommerce: failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// Ensure Client implements order.Gateway
var _ order.Gateway = (*Client)(nil)
