package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/models"
	"github.com/shopline/shopline-api/repository"
	"gorm.io/datatypes"
)

type OrderController struct {
	orders repository.OrderRepository
}

func NewOrderController(orders repository.OrderRepository) *OrderController {
	return &OrderController{orders: orders}
}

func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var orderInfo struct {
		Items       json.RawMessage `json:"items" binding:"required"`
		TotalAmount float64         `json:"totalAmount" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order := models.Order{
		Items:       datatypes.JSON(orderInfo.Items),
		TotalAmount: orderInfo.TotalAmount,
	}

	if err := oc.orders.Create(ctx.Request.Context(), &order); err != nil {
		log.Printf("Failed to create order: %v", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create order", err)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

func (oc *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := oc.orders.FindAll(ctx.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
