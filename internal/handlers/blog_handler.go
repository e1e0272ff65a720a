package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/middleware"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type BlogHandler struct {
	db *gorm.DB
}

func NewBlogHandler(db *gorm.DB) *BlogHandler {
	return &BlogHandler{db: db}
}

type CreateBlogPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	ImageURL string `json:"imageUrl"`
	Featured bool   `json:"featured"`
}

type UpdateBlogPostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
	Featured *bool   `json:"featured"`
}

// List filters by category (exact match) or featured=true; with
// neither filter it returns everything, newest published first.
func (h *BlogHandler) List(c *gin.Context) {
	q := h.db.Order("published_at DESC")

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	} else if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, posts)
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid blog post id")
		return
	}

	var post models.BlogPost
	if err := h.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "Blog post not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, post)
}

// Create requires authentication but not the admin role, unlike
// update/delete below. That asymmetry matches the observed surface.
func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	post := models.BlogPost{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    middleware.Principal(c).ID,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		PublishedAt: time.Now(),
	}

	if err := h.db.Create(&post).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Created(c, "Blog post created successfully", post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid blog post id")
		return
	}

	var post models.BlogPost
	if err := h.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "Blog post not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}

	if err := h.db.Save(&post).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OKMessage(c, "Blog post updated successfully", post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid blog post id")
		return
	}

	res := h.db.Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		httpresp.Error(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httpresp.Fail(c, 404, "Blog post not found")
		return
	}

	httpresp.Message(c, "Blog post deleted successfully")
}
