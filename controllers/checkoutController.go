package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Checkout accepts the browser's cart and responds with the Stripe-hosted
// payment page URL.
func (cc *CheckoutController) Checkout(ctx *gin.Context) {
	var body struct {
		Items json.RawMessage `json:"items" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	url, err := cc.checkout.Checkout(ctx.Request.Context(), body.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidItems),
			errors.Is(err, services.ErrInvalidPrice):
			respondWithError(ctx, http.StatusBadRequest, "Invalid cart items", err)
		default:
			log.Printf("Error creating Stripe session: %v", err)
			respondWithError(ctx, http.StatusInternalServerError, "Something went wrong with the payment.", nil)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}
