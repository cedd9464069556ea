package woocommerce

import "errors"

// Config holds configuration for the WooCommerce store API
type Config struct {
	// BaseURL is the store's REST API root (e.g. https://shop.example.com/wp-json/wc/v3)
	BaseURL string
	// ConsumerKey authenticates API requests
	ConsumerKey string
	// ConsumerSecret authenticates API requests
	ConsumerSecret string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// Errors for WooCommerce configuration
var (
	ErrConfigMissingBaseURL        = errors.New("woocommerce: base URL is required")
	ErrConfigMissingConsumerKey    = errors.New("woocommerce: consumer key is required")
	ErrConfigMissingConsumerSecret = errors.New("woocommerce: consumer secret is required")
)

// NewConfig creates a WooCommerce configuration with defaults
func NewConfig(baseURL, consumerKey, consumerSecret string) *Config {
	return &Config{
		BaseURL:        baseURL,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		TimeoutSeconds: 30,
	}
}

// Validate validates the WooCommerce configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.ConsumerKey == "" {
		return ErrConfigMissingConsumerKey
	}
	if c.ConsumerSecret == "" {
		return ErrConfigMissingConsumerSecret
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
