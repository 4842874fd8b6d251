package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/logger"
	"github.com/syedsartaj/travel-adventure/repositories"
	"github.com/syedsartaj/travel-adventure/services"
)

// SubscribeHandler godoc
// @Summary      Subscribe to the newsletter
// @Description  Re-subscribing an inactive email reactivates it; an active one reports conflict
// @Tags         newsletter
// @Accept       json
// @Param        body  body  dto.SubscribeRequest  true  "Subscription"
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /newsletter [post]
func SubscribeHandler(svc *services.NewsletterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		outcome, err := svc.Subscribe(c.Request.Context(), req)
		if err != nil {
			if field, ok := validationField(err); ok {
				respondError(c, http.StatusBadRequest, "Missing required field: "+field)
				return
			}
			logger.Log.Errorf("newsletter subscription: %v", err)
			respondError(c, http.StatusInternalServerError, "Subscription failed")
			return
		}

		switch outcome {
		case repositories.SubscribeOutcomeAlreadySubscribed:
			respondError(c, http.StatusConflict, "Already subscribed")
		case repositories.SubscribeOutcomeReactivated:
			respondOK(c, http.StatusOK, gin.H{"message": "Subscription reactivated"})
		default:
			respondOK(c, http.StatusCreated, gin.H{"message": "Successfully subscribed"})
		}
	}
}
