package payments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// LineItem is one product entry submitted to Stripe Checkout. UnitAmount is
// in the smallest currency unit (cents).
type LineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// StripeClient creates hosted Checkout Sessions via Stripe's REST API.
type StripeClient struct {
	http   *resty.Client
	domain string
}

func NewStripeClient(apiKey, baseURL, domain string) *StripeClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second)

	return &StripeClient{
		http:   client,
		domain: domain,
	}
}

// CreateCheckoutSession submits a one-time card payment session and returns
// the hosted page the payer should be redirected to.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, lineItems []LineItem) (*CheckoutSession, error) {
	form := map[string]string{
		"mode":                       "payment",
		"payment_method_types[0]":    "card",
		"success_url":                c.domain + "/success",
		"cancel_url":                 c.domain + "/cancel",
		"billing_address_collection": "required",
	}

	for i, item := range lineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form[prefix+"[price_data][currency]"] = "usd"
		form[prefix+"[price_data][product_data][name]"] = item.Name
		if item.Image != "" {
			form[prefix+"[price_data][product_data][images][0]"] = item.Image
		}
		form[prefix+"[price_data][unit_amount]"] = strconv.FormatInt(item.UnitAmount, 10)
		form[prefix+"[quantity]"] = strconv.FormatInt(item.Quantity, 10)
	}

	var session CheckoutSession
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		SetResult(&session).
		Post("/v1/checkout/sessions")

	if err != nil {
		return nil, fmt.Errorf("stripe checkout session request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe checkout session failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	if session.URL == "" {
		return nil, fmt.Errorf("stripe checkout session response missing redirect URL")
	}

	return &session, nil
}
