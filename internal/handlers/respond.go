package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers the same envelope: {success, data?|message?, error?}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondServerError hides the raw error text in production.
func respondServerError(c *gin.Context, production bool, err error) {
	if production {
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondError(c, http.StatusInternalServerError, err.Error())
}
