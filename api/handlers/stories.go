package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/logger"
	"github.com/syedsartaj/travel-adventure/services"
)

// ListStoriesHandler godoc
// @Summary      List stories
// @Description  Public published list with optional featured/category filter; all=true returns every story (admin)
// @Tags         stories
// @Param        all       query  bool    false  "Return all stories regardless of published state"
// @Param        featured  query  bool    false  "Only featured stories"
// @Param        category  query  string  false  "Category filter"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stories [get]
func ListStoriesHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.ListStoriesInput{
			All:      c.Query("all") == "true",
			Category: c.Query("category"),
		}
		if c.Query("featured") == "true" {
			featured := true
			in.Featured = &featured
		}

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			logger.Log.Errorf("fetching stories: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch stories")
			return
		}
		respondOK(c, http.StatusOK, items)
	}
}

// CreateStoryHandler godoc
// @Summary      Create story
// @Tags         stories
// @Accept       json
// @Param        story  body  dto.CreateStoryRequest  true  "Story draft"
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /stories [post]
func CreateStoryHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateStoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		insertedID, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			if field, ok := validationField(err); ok {
				respondError(c, http.StatusBadRequest, "Missing required field: "+field)
				return
			}
			logger.Log.Errorf("creating story: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to create story")
			return
		}
		respondOK(c, http.StatusCreated, gin.H{"insertedId": insertedID})
	}
}

// GetStoryHandler godoc
// @Summary      Get story by id
// @Description  Admin read; returns the story regardless of published state
// @Tags         stories
// @Param        id  path  string  true  "Story id (hex)"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stories/{id} [get]
func GetStoryHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		story, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Story not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("fetching story: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch story")
			return
		}
		respondOK(c, http.StatusOK, story)
	}
}

// GetStoryBySlugHandler godoc
// @Summary      Get published story by slug
// @Description  Public read; increments the story view counter
// @Tags         stories
// @Param        slug  path  string  true  "Story slug"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stories/slug/{slug} [get]
func GetStoryBySlugHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		story, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Story not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("fetching story by slug: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch story")
			return
		}
		respondOK(c, http.StatusOK, story)
	}
}

// UpdateStoryHandler godoc
// @Summary      Update story
// @Tags         stories
// @Accept       json
// @Param        id    path  string                  true  "Story id (hex)"
// @Param        body  body  map[string]interface{}  true  "Partial update"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stories/{id} [put]
func UpdateStoryHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		modified, err := svc.Update(c.Request.Context(), c.Param("id"), body)
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Story not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("updating story: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to update story")
			return
		}
		respondOK(c, http.StatusOK, gin.H{"modifiedCount": modified})
	}
}

// DeleteStoryHandler godoc
// @Summary      Delete story
// @Tags         stories
// @Param        id  path  string  true  "Story id (hex)"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stories/{id} [delete]
func DeleteStoryHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Story not found")
			return
		}
		if err != nil {
			logger.Log.Errorf("deleting story: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to delete story")
			return
		}
		respondOK(c, http.StatusOK, gin.H{"deletedCount": deleted})
	}
}

// AddCommentHandler godoc
// @Summary      Add comment to a story
// @Description  Comments are created unapproved and wait for moderation
// @Tags         stories
// @Accept       json
// @Param        slug  path  string                 true  "Story slug"
// @Param        body  body  dto.AddCommentRequest  true  "Comment"
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /stories/{slug}/comments [post]
func AddCommentHandler(svc *services.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AddCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.AddComment(c.Request.Context(), c.Param("slug"), req)
		if err == services.ErrNotFound {
			respondError(c, http.StatusNotFound, "Story not found")
			return
		}
		if err != nil {
			if field, ok := validationField(err); ok {
				respondError(c, http.StatusBadRequest, "Missing required field: "+field)
				return
			}
			logger.Log.Errorf("adding comment: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to add comment")
			return
		}
		respondOK(c, http.StatusCreated, gin.H{"message": "Comment submitted for approval"})
	}
}
