package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/controllers"
)

func OrderRoutes(server *gin.Engine, oc *controllers.OrderController) {
	server.POST("/api/orders", oc.CreateOrder)
	server.GET("/api/orders", oc.GetOrders)
}
