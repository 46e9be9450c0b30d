package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/controllers"
)

func CheckoutRoutes(server *gin.Engine, cc *controllers.CheckoutController) {
	server.POST("/stripe-checkout", cc.Checkout)
}
