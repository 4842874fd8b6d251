package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedsartaj/travel-adventure/config"
	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/smaksly"
)

// ListBlogsHandler godoc
// @Summary      List tenant blogs
// @Description  Blogs for the configured Smaksly deployment, newest first; empty when unprovisioned
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /blogs [get]
func ListBlogsHandler(svc *smaksly.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs := svc.GetBlogs(c.Request.Context())
		out := make([]dto.BlogDTO, 0, len(blogs))
		for _, b := range blogs {
			out = append(out, dto.NewBlogDTO(b, false))
		}
		respondOK(c, http.StatusOK, out)
	}
}

// GetBlogBySlugHandler godoc
// @Summary      Get tenant blog by slug
// @Tags         blogs
// @Param        slug  path  string  true  "Blog slug"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /blogs/slug/{slug} [get]
func GetBlogBySlugHandler(svc *smaksly.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := svc.GetBlogBySlug(c.Request.Context(), c.Param("slug"))
		if b == nil {
			respondError(c, http.StatusNotFound, "Blog not found")
			return
		}
		respondOK(c, http.StatusOK, dto.NewBlogDTO(*b, true))
	}
}

// GetBlogByIDHandler godoc
// @Summary      Get tenant blog by id
// @Tags         blogs
// @Param        id  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /blogs/id/{id} [get]
func GetBlogByIDHandler(svc *smaksly.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := svc.GetBlogByID(c.Request.Context(), c.Param("id"))
		if b == nil {
			respondError(c, http.StatusNotFound, "Blog not found")
			return
		}
		respondOK(c, http.StatusOK, dto.NewBlogDTO(*b, true))
	}
}

// DebugHandler godoc
// @Summary      Integration debug info
// @Description  Echoes whether the tenant id and store URI are configured plus a blog summary
// @Tags         debug
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /debug [get]
func DebugHandler(svc *smaksly.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		smakslyID := config.SmakslyID()
		if smakslyID == "" {
			smakslyID = "NOT SET"
		}
		uriSet := config.MongoURI() != ""

		blogs, err := svc.Blogs(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"smaksly_id":      smakslyID,
				"mongodb_uri_set": uriSet,
				"error":           err.Error(),
			})
			return
		}

		summary := make([]gin.H, 0, len(blogs))
		for _, b := range blogs {
			summary = append(summary, gin.H{"id": b.ID, "title": b.Title, "slug": b.Slug})
		}

		c.JSON(http.StatusOK, gin.H{
			"smaksly_id":      smakslyID,
			"mongodb_uri_set": uriSet,
			"blogs_count":     len(blogs),
			"blogs":           summary,
		})
	}
}
