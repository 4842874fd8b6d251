package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/logger"
	"github.com/syedsartaj/travel-adventure/services"
)

// ListDestinationsHandler godoc
// @Summary      List destinations
// @Tags         destinations
// @Param        all       query  bool  false  "Return all destinations regardless of published state"
// @Param        featured  query  bool  false  "Order by rating and visitor count"
// @Param        limit     query  int   false  "Result cap"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /destinations [get]
func ListDestinationsHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
		in := services.ListDestinationsInput{
			All:      c.Query("all") == "true",
			Featured: c.Query("featured") == "true",
			Limit:    limit,
		}

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			logger.Log.Errorf("fetching destinations: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch destinations")
			return
		}
		respondOK(c, http.StatusOK, items)
	}
}

// SearchDestinationsHandler godoc
// @Summary      Search destinations
// @Description  Case-insensitive match across title, country, description and tags
// @Tags         destinations
// @Param        q  query  string  true  "Search query"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /destinations/search [get]
func SearchDestinationsHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			logger.Log.Errorf("searching destinations: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to search destinations")
			return
		}
		respondOK(c, http.StatusOK, items)
	}
}

// CreateDestinationHandler godoc
// @Summary      Create destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /destinations [post]
func CreateDestinationHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.DestinationDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		insertedID, err := svc.Create(c.Request.Context(), body.ToModel())
		if err != nil {
			if field, ok := validationField(err); ok {
				respondError(c, http.StatusBadRequest, "Missing required field: "+field)
				return
			}
			logger.Log.Errorf("creating destination: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to create destination")
			return
		}
		respondOK(c, http.StatusCreated, gin.H{"insertedId": insertedID})
	}
}

// GetDestinationHandler godoc
// @Summary      Get destination by id
// @Tags         destinations
// @Param        id  path  string  true  "Destination id (hex)"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /destinations/{id} [get]
func GetDestinationHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Destination not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("fetching destination: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch destination")
			return
		}
		respondOK(c, http.StatusOK, d)
	}
}

// GetDestinationBySlugHandler godoc
// @Summary      Get published destination by slug
// @Tags         destinations
// @Param        slug  path  string  true  "Destination slug"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /destinations/slug/{slug} [get]
func GetDestinationBySlugHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Destination not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("fetching destination by slug: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch destination")
			return
		}
		respondOK(c, http.StatusOK, d)
	}
}

// UpdateDestinationHandler godoc
// @Summary      Update destination
// @Tags         destinations
// @Accept       json
// @Param        id  path  string  true  "Destination id (hex)"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /destinations/{id} [put]
func UpdateDestinationHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		modified, err := svc.Update(c.Request.Context(), c.Param("id"), body)
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Destination not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("updating destination: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to update destination")
			return
		}
		respondOK(c, http.StatusOK, gin.H{"modifiedCount": modified})
	}
}

// DeleteDestinationHandler godoc
// @Summary      Delete destination
// @Tags         destinations
// @Param        id  path  string  true  "Destination id (hex)"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /destinations/{id} [delete]
func DeleteDestinationHandler(svc *services.DestinationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Destination not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("deleting destination: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to delete destination")
			return
		}
		respondOK(c, http.StatusOK, gin.H{"deletedCount": deleted})
	}
}
