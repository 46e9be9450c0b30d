package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/success", controllers.GetSuccess)
	server.GET("/cancel", controllers.GetCancel)
	server.Static("/public", "./public")
}
