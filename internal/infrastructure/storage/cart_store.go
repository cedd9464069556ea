package storage

import (
	"context"
	"time"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
)

// CartKeyPrefix is the fixed, versioned namespace for durable cart
// snapshots. Bump the version segment when the snapshot format changes
const CartKeyPrefix = "vellaperfumeria:cart:v1:"

// DefaultSnapshotTTL is how long an untouched cart snapshot is retained
const DefaultSnapshotTTL = 30 * 24 * time.Hour

// CartStore persists whole-cart snapshots keyed by session. Absent or
// unreadable snapshots load as an empty cart rather than an error, so a
// corrupted snapshot can never break a session
type CartStore interface {
	// Load returns the stored cart for a session, or an empty cart if
	// none exists or the stored snapshot cannot be decoded. A non-nil
	// error means the backing store itself failed
	Load(ctx context.Context, sessionID string) (cart.Cart, error)

	// Save replaces the stored cart for a session with the given
	// snapshot, serialized in full
	Save(ctx context.Context, sessionID string, c cart.Cart) error
}
