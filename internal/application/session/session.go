package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront/internal/domain/content"
	"github.com/vellaperfumeria/storefront/internal/domain/navigation"
	"github.com/vellaperfumeria/storefront/internal/domain/order"
	"github.com/vellaperfumeria/storefront/internal/domain/shared"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/storage"
)

// Deps are the collaborators a session works against. Gateway may be nil
// when no remote shop is configured; every remote path then degrades to
// its local fallback
type Deps struct {
	Products catalog.ProductRepository
	Posts    content.PostRepository
	Carts    storage.CartStore
	Gateway  order.Gateway
	Logger   *zap.Logger
}

// Session is the state owner for one storefront visitor: the current
// navigation state, its URL projection, the cart and the checkout flow.
// All state changes go through named operations; the struct is never
// mutated from outside
type Session struct {
	mu    sync.Mutex
	id    uuid.UUID
	deps  Deps
	codec *navigation.Codec

	state navigation.State
	query string // canonical URL projection of state
	token string

	cart       cart.Cart
	cartLoaded bool // persistence writes stay disabled until the initial load resolves
	cartOpen   bool

	submitting   bool
	confirmation *Confirmation

	lastSeen time.Time
}

// Effects are the UI side effects an operation produced. The client
// applies them after updating its local copy of the snapshot
type Effects struct {
	URLChanged bool `json:"url_changed"`
	ScrollTop  bool `json:"scroll_top"`
	CartOpened bool `json:"cart_opened"`
}

// Snapshot is the full observable state of a session
type Snapshot struct {
	SessionID    string           `json:"session_id"`
	State        navigation.State `json:"state"`
	Query        string           `json:"query"`
	Cart         cart.Cart        `json:"cart"`
	ItemCount    int              `json:"item_count"`
	Totals       checkout.Totals  `json:"totals"`
	CartOpen     bool             `json:"cart_open"`
	Submitting   bool             `json:"submitting"`
	Confirmation *Confirmation    `json:"confirmation,omitempty"`
}

// Result pairs a snapshot with the effects of the operation that
// produced it
type Result struct {
	Effects  Effects  `json:"effects"`
	Snapshot Snapshot `json:"snapshot"`
}

// NavigatePayload carries the payload reference for a navigation
// request; only the field matching the target view is consulted
type NavigatePayload struct {
	ProductID int
	Category  catalog.CategoryKey
	PostID    int
}

// New creates a session in its pre-boot state
func New(id uuid.UUID, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Session{
		id:       id,
		deps:     deps,
		codec:    navigation.NewCodec(deps.Products, deps.Posts),
		state:    navigation.Home(),
		cart:     cart.New(),
		lastSeen: time.Now(),
	}
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Boot initializes the session from the URL the visitor arrived with.
// Navigation is resolved from the URL first; cart resolution follows and
// persistence writes stay disabled until it completes, so an in-flight
// load can never be clobbered by a premature empty-cart write.
//
// A URL token references a server-held cart: if that cart loads and is
// non-empty it becomes the active cart and the session resumes at
// checkout, pushing the checkout URL. Any other outcome falls back to
// the durable local cart, and failing that, an empty one
func (s *Session) Boot(ctx context.Context, rawQuery string) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = navigation.Token(rawQuery)
	s.state = s.codec.Parse(rawQuery)
	s.query = navigation.EncodeQuery(s.state, s.token)

	s.resolveInitialCart(ctx)
	s.cartLoaded = true

	return s.result(Effects{URLChanged: s.query != rawQuery, ScrollTop: true})
}

func (s *Session) resolveInitialCart(ctx context.Context) {
	if s.token != "" && s.deps.Gateway != nil {
		serverCart, err := s.deps.Gateway.FetchServerCart(ctx, s.token)
		if err == nil && !serverCart.IsEmpty() {
			s.cart = serverCart
			s.setState(navigation.Plain(navigation.ViewCheckoutSummary))
			return
		}
		if err != nil {
			s.deps.Logger.Warn("server cart fetch failed, falling back to local cart",
				zap.String("session_id", s.id.String()),
				zap.Error(err),
			)
		}
	}
	s.loadLocalCart(ctx)
}

func (s *Session) loadLocalCart(ctx context.Context) {
	stored, err := s.deps.Carts.Load(ctx, s.id.String())
	if err != nil {
		s.deps.Logger.Warn("local cart load failed, starting empty",
			zap.String("session_id", s.id.String()),
			zap.Error(err),
		)
		s.cart = cart.New()
		return
	}
	s.cart = stored
}

// Navigate replaces the navigation state unconditionally; every view is
// reachable from every other. Views carrying an object payload resolve
// it against the catalog or blog dataset
func (s *Session) Navigate(view navigation.View, payload NavigatePayload) (*Result, error) {
	next, err := s.resolveState(view, payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pushed := s.setState(next)
	return s.result(Effects{URLChanged: pushed, ScrollTop: true}), nil
}

func (s *Session) resolveState(view navigation.View, payload NavigatePayload) (navigation.State, error) {
	switch view {
	case navigation.ViewProductDetail:
		product, err := s.deps.Products.FindByID(payload.ProductID)
		if err != nil {
			return navigation.State{}, err
		}
		return navigation.ProductDetail(product), nil
	case navigation.ViewProducts:
		category := payload.Category
		if category == "" {
			category = catalog.CategoryAll
		}
		return navigation.Products(category), nil
	case navigation.ViewBlogPost:
		post, err := s.deps.Posts.FindByID(payload.PostID)
		if err != nil {
			return navigation.State{}, err
		}
		return navigation.BlogPost(post), nil
	default:
		if !view.IsValid() {
			return navigation.State{}, shared.ErrInvalidInput
		}
		return navigation.Plain(view), nil
	}
}

// HandleHistoryChange is the browser-history counterpart of Navigate:
// the reported URL fully replaces the state (URL wins, state follows).
// The state is not projected back onto the URL here, which is what
// prevents the two sync directions from feeding each other
func (s *Session) HandleHistoryChange(rawQuery string) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.codec.Parse(rawQuery)
	s.query = navigation.EncodeQuery(s.state, s.token)

	return s.result(Effects{ScrollTop: true})
}

// AddToCart merges a product into the cart and opens the cart panel
func (s *Session) AddToCart(ctx context.Context, productID int, variant map[string]string) (*Result, error) {
	product, err := s.deps.Products.FindByID(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(product, variant)
	s.cartOpen = true
	s.persist(ctx)

	return s.result(Effects{CartOpened: true}), nil
}

// BuyNow merges a product into the cart like AddToCart but skips the
// cart panel and goes straight to checkout
func (s *Session) BuyNow(ctx context.Context, productID int, variant map[string]string) (*Result, error) {
	product, err := s.deps.Products.FindByID(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(product, variant)
	s.persist(ctx)

	pushed := s.setState(navigation.Plain(navigation.ViewCheckoutSummary))
	return s.result(Effects{URLChanged: pushed, ScrollTop: true}), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
// Unknown line IDs are a no-op
func (s *Session) UpdateQuantity(ctx context.Context, itemID string, quantity int) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.UpdateQuantity(itemID, quantity)
	s.persist(ctx)
	return s.result(Effects{})
}

// RemoveItem removes a cart line. Equivalent to UpdateQuantity(id, 0)
func (s *Session) RemoveItem(ctx context.Context, itemID string) *Result {
	return s.UpdateQuantity(ctx, itemID, 0)
}

// ClearCart empties the cart
func (s *Session) ClearCart(ctx context.Context) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.persist(ctx)
	return s.result(Effects{})
}

// SetCartOpen shows or hides the cart panel
func (s *Session) SetCartOpen(open bool) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartOpen = open
	return s.result(Effects{CartOpened: open})
}

// Current returns the session's observable state without mutating it
func (s *Session) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result(Effects{})
}

// Touch marks the session as recently used
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen returns the time of the last session use
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// setState replaces the navigation state and reprojects it onto the
// URL. The projection is compared to the current one so an unchanged
// URL is never rewritten; returns true if the URL changed. Callers hold
// the lock
func (s *Session) setState(next navigation.State) bool {
	s.state = next
	newQuery := navigation.EncodeQuery(s.state, s.token)
	if newQuery == s.query {
		return false
	}
	s.query = newQuery
	return true
}

// persist writes the cart snapshot to durable storage. Suppressed while
// the initial load is unresolved; failures degrade to memory-only
// operation. Callers hold the lock
func (s *Session) persist(ctx context.Context) {
	if !s.cartLoaded {
		return
	}
	if err := s.deps.Carts.Save(ctx, s.id.String(), s.cart); err != nil {
		s.deps.Logger.Warn("cart snapshot write failed",
			zap.String("session_id", s.id.String()),
			zap.Error(err),
		)
	}
}

// result builds a Result from current state. Callers hold the lock.
// The snapshot carries a clone of the cart, so results stay valid after
// the lock is released and later operations mutate the live cart
func (s *Session) result(effects Effects) *Result {
	return &Result{
		Effects: effects,
		Snapshot: Snapshot{
			SessionID:    s.id.String(),
			State:        s.state,
			Query:        s.query,
			Cart:         s.cart.Clone(),
			ItemCount:    s.cart.ItemCount(),
			Totals:       checkout.Calculate(&s.cart),
			CartOpen:     s.cartOpen,
			Submitting:   s.submitting,
			Confirmation: s.confirmation,
		},
	}
}
