package controllers

import "github.com/gin-gonic/gin"

func GetHome(ctx *gin.Context) {
	ctx.File("public/index.html")
}

func GetSuccess(ctx *gin.Context) {
	ctx.File("public/success.html")
}

func GetCancel(ctx *gin.Context) {
	ctx.File("public/cancel.html")
}
