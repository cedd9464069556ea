package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vellaperfumeria/storefront/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront/internal/domain/navigation"
	"github.com/vellaperfumeria/storefront/internal/domain/order"
	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

// SubmitOutcome classifies how an order reference was obtained
type SubmitOutcome string

const (
	// OutcomeCreated means the remote shop returned a real order id
	OutcomeCreated SubmitOutcome = "created"
	// OutcomeAccepted means the call succeeded but no order id came back
	OutcomeAccepted SubmitOutcome = "accepted"
	// OutcomeDegraded means the remote call failed and a local error
	// reference was minted instead
	OutcomeDegraded SubmitOutcome = "degraded"
)

// Confirmation is the customer-facing result of a submission. It always
// carries a reference: submission never fails past validation
type Confirmation struct {
	Reference     string                   `json:"reference"`
	Outcome       SubmitOutcome            `json:"outcome"`
	Totals        checkout.Totals          `json:"totals"`
	PaymentMethod checkout.PaymentMethod   `json:"payment_method"`
	Email         string                   `json:"email"`
	Shipping      checkout.ShippingDetails `json:"shipping"`
	SubmittedAt   time.Time                `json:"submitted_at"`
}

// SubmitOrder runs the checkout submission. Validation failures and an
// empty cart abort before any network traffic; past that point the
// operation always produces a confirmation. The session lock is released
// for the duration of the remote call, with a busy flag rejecting
// concurrent submissions from the same session
func (s *Session) SubmitOrder(ctx context.Context, form *checkout.Form) (*Result, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, shared.ErrSubmitInFlight
	}
	if s.cart.IsEmpty() {
		s.mu.Unlock()
		return nil, shared.ErrInvalidState
	}
	if err := form.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.submitting = true
	payload := order.New(&s.cart, form)
	totals := checkout.Calculate(&s.cart)
	s.mu.Unlock()

	reference, outcome := s.placeOrder(ctx, payload)

	s.deps.Logger.Info("order submitted",
		zap.String("session_id", s.id.String()),
		zap.String("reference", reference),
		zap.String("outcome", string(outcome)),
		zap.String("payment_method", string(form.Method)),
		zap.String("total", totals.Total.StringFixed(2)),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	s.confirmation = &Confirmation{
		Reference:     reference,
		Outcome:       outcome,
		Totals:        totals,
		PaymentMethod: form.Method,
		Email:         form.Email,
		Shipping:      form.Shipping,
		SubmittedAt:   time.Now(),
	}
	pushed := s.setState(navigation.Plain(navigation.ViewCheckoutSummary))

	return s.result(Effects{URLChanged: pushed, ScrollTop: true}), nil
}

// placeOrder performs the remote creation call and folds every outcome
// into a reference. A missing gateway counts as a failed call
func (s *Session) placeOrder(ctx context.Context, payload *order.Order) (string, SubmitOutcome) {
	if s.deps.Gateway == nil {
		return errorReference(), OutcomeDegraded
	}

	created, err := s.deps.Gateway.CreateOrder(ctx, payload)
	switch {
	case err == nil && created != nil && created.ID != 0:
		return strconv.FormatInt(created.ID, 10), OutcomeCreated
	case err == nil || errors.Is(err, order.ErrNoReference):
		return acceptedReference(), OutcomeAccepted
	default:
		s.deps.Logger.Warn("order creation call failed",
			zap.String("session_id", s.id.String()),
			zap.Error(err),
		)
		return errorReference(), OutcomeDegraded
	}
}

// acceptedReference mints a local reference for an order the shop
// accepted without returning an id
func acceptedReference() string {
	return fmt.Sprintf("VP-%d", rand.IntN(1000000))
}

// errorReference mints a local reference recording that the creation
// call itself failed
func errorReference() string {
	return fmt.Sprintf("ERR-SAVE-%d", rand.IntN(1000))
}
