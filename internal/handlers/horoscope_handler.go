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

type HoroscopeHandler struct {
	db *gorm.DB
}

func NewHoroscopeHandler(db *gorm.DB) *HoroscopeHandler {
	return &HoroscopeHandler{db: db}
}

type CreateHoroscopeRequest struct {
	Sign    string `json:"sign" binding:"required"`
	Content string `json:"content" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

type UpdateHoroscopeRequest struct {
	Sign    *string `json:"sign"`
	Content *string `json:"content"`
	Date    *string `json:"date"`
}

// List returns the horoscopes for a date (today when omitted). With a
// sign it resolves to exactly one record or 404; without one it
// returns all signs for the date, sorted by sign name.
func (h *HoroscopeHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if sign := c.Query("sign"); sign != "" {
		var horoscope models.Horoscope
		err := h.db.Where("sign = ? AND date = ?", sign, date).First(&horoscope).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httpresp.Fail(c, 404, "Horoscope not found")
				return
			}
			httpresp.Error(c, err)
			return
		}

		httpresp.OK(c, horoscope)
		return
	}

	var horoscopes []models.Horoscope
	if err := h.db.Where("date = ?", date).Order("sign ASC").Find(&horoscopes).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, horoscopes)
}

// Create pre-checks the (sign, date) pair before inserting. The check
// and the insert are not atomic, so two concurrent creates can both
// pass it; sequential duplicates get the conflict below.
func (h *HoroscopeHandler) Create(c *gin.Context) {
	var req CreateHoroscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.Horoscope{}).
		Where("sign = ? AND date = ?", req.Sign, req.Date).
		Count(&count).Error; err != nil {
		httpresp.Error(c, err)
		return
	}
	if count > 0 {
		httpresp.Fail(c, 400, "A horoscope for this sign and date already exists")
		return
	}

	horoscope := models.Horoscope{
		Sign:     req.Sign,
		Content:  req.Content,
		Date:     req.Date,
		AuthorID: middleware.Principal(c).ID,
	}

	if err := h.db.Create(&horoscope).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Created(c, "Horoscope created successfully", horoscope)
}

func (h *HoroscopeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid horoscope id")
		return
	}

	var horoscope models.Horoscope
	if err := h.db.First(&horoscope, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "Horoscope not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	var req UpdateHoroscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	if req.Sign != nil {
		horoscope.Sign = *req.Sign
	}
	if req.Content != nil {
		horoscope.Content = *req.Content
	}
	if req.Date != nil {
		horoscope.Date = *req.Date
	}

	if err := h.db.Save(&horoscope).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OKMessage(c, "Horoscope updated successfully", horoscope)
}
