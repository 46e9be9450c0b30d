package controllers

import "github.com/gin-gonic/gin"

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func sendJSONResponse(ctx *gin.Context, statusCode int, payload gin.H) {
	ctx.JSON(statusCode, payload)
}
