package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type SubscriberHandler struct {
	db *gorm.DB
}

func NewSubscriberHandler(db *gorm.DB) *SubscriberHandler {
	return &SubscriberHandler{db: db}
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe creates a subscriber, or reactivates one that previously
// unsubscribed. The same email never gets a second row.
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	var existing models.Subscriber
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		if existing.Subscribed {
			httpresp.Fail(c, 400, "Email already subscribed")
			return
		}

		existing.Subscribed = true
		if err := h.db.Save(&existing).Error; err != nil {
			httpresp.Error(c, err)
			return
		}

		httpresp.OKMessage(c, "Subscription reactivated", existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httpresp.Error(c, err)
		return
	}

	sub := models.Subscriber{
		Email:        req.Email,
		Subscribed:   true,
		SubscribedAt: time.Now(),
	}

	if err := h.db.Create(&sub).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Created(c, "Subscribed successfully", sub)
}

// List returns active subscribers only, newest first.
func (h *SubscriberHandler) List(c *gin.Context) {
	var subs []models.Subscriber
	if err := h.db.
		Where("subscribed = ?", true).
		Order("subscribed_at DESC").
		Find(&subs).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, subs)
}
