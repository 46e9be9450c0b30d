package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/controllers"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController) {
	server.POST("/api/products", pc.CreateProduct)
	server.GET("/api/products", pc.GetProducts)
	server.GET("/api/products/:id", pc.GetProduct)
	server.POST("/api/products/images", pc.UploadProductImages)
}
