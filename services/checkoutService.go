package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopline/shopline-api/models"
	"github.com/shopline/shopline-api/payments"
	"github.com/shopline/shopline-api/repository"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var (
	ErrEmptyCart    = errors.New("cart has no items")
	ErrInvalidItems = errors.New("invalid cart items")
	ErrInvalidPrice = errors.New("invalid item price")
)

type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, lineItems []payments.LineItem) (*payments.CheckoutSession, error)
}

// CheckoutService turns a cart into a Stripe Checkout session and records the
// resulting order.
type CheckoutService struct {
	gateway CheckoutGateway
	orders  repository.OrderRepository
}

func NewCheckoutService(gateway CheckoutGateway, orders repository.OrderRepository) *CheckoutService {
	return &CheckoutService{
		gateway: gateway,
		orders:  orders,
	}
}

// Checkout builds one line item per cart item, creates the payment session,
// and persists an order snapshotting the raw items exactly as the client sent
// them. It returns the session's redirect URL.
//
// The order write happens after the gateway call: a gateway failure never
// leaves an order behind. If the write itself fails the session already
// exists, so the error is logged and the URL is still returned; the payer is
// not blocked by our bookkeeping.
func (s *CheckoutService) Checkout(ctx context.Context, rawItems json.RawMessage) (string, error) {
	var items []models.CartItem
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidItems, err)
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	lineItems := make([]payments.LineItem, 0, len(items))
	var totalCents int64
	for _, item := range items {
		unitAmount, err := ParseUnitAmount(item.Price)
		if err != nil {
			return "", err
		}

		lineItems = append(lineItems, payments.LineItem{
			Name:       item.Title,
			Image:      item.ProductImg,
			UnitAmount: unitAmount,
			Quantity:   item.Quantity,
		})
		totalCents += unitAmount * item.Quantity
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, lineItems)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	order := &models.Order{
		Items:             datatypes.JSON(rawItems),
		TotalAmount:       float64(totalCents) / 100,
		CheckoutSessionID: session.ID,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		log.Printf("Checkout session %s created but order not saved: %v", session.ID, err)
	}

	return session.URL, nil
}

// ParseUnitAmount converts a display price string into the smallest currency
// unit. Every character except digits, the decimal point, and the minus sign
// is stripped, then the remainder is multiplied by 100 and truncated toward
// zero. "$12.50" parses to 1250; "1,200" parses to 120000 because the comma
// is dropped before parsing. That quirk is load-bearing: stored orders were
// computed with it.
func ParseUnitAmount(price string) (int64, error) {
	var stripped strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			stripped.WriteRune(r)
		}
	}

	amount, err := decimal.NewFromString(stripped.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}

	return amount.Mul(decimal.NewFromInt(100)).IntPart(), nil
}
