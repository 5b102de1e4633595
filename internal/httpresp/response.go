package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Success é a resposta padrão de mutações.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
