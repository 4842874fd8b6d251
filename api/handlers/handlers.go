package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/services"
)

// Every endpoint answers with this envelope. Unexpected errors never leak
// detail to the client; the fixed message plus a logged line is the contract.
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func validationField(err error) (string, bool) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return ve.Field, true
	}
	return "", false
}
