package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/soulsyync/soulsyync-api/internal/domain/appointment"
	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type AnalyticsHandler struct {
	db *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: db}
}

type AppointmentStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Canceled  int64 `json:"canceled"`
}

type Analytics struct {
	UserCount        int64            `json:"userCount"`
	AppointmentStats AppointmentStats `json:"appointmentStats"`
	BlogPostCount    int64            `json:"blogPostCount"`
	SubscriberCount  int64            `json:"subscriberCount"`
	TestimonialCount int64            `json:"testimonialCount"`
}

// Get recomputes every count from the live stores on each call;
// nothing is cached or persisted.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	var out Analytics

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{h.db.Model(&models.User{}), &out.UserCount},
		{h.db.Model(&models.BlogPost{}), &out.BlogPostCount},
		{h.db.Model(&models.Subscriber{}).Where("subscribed = ?", true), &out.SubscriberCount},
		{h.db.Model(&models.Testimonial{}).Where("approved = ?", true), &out.TestimonialCount},
	}
	for _, cq := range counts {
		if err := cq.query.Count(cq.dest).Error; err != nil {
			httpresp.Error(c, err)
			return
		}
	}

	if err := h.db.Model(&models.Appointment{}).Count(&out.AppointmentStats.Total).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	byStatus := map[domain.Status]*int64{
		domain.StatusPending:   &out.AppointmentStats.Pending,
		domain.StatusConfirmed: &out.AppointmentStats.Confirmed,
		domain.StatusCompleted: &out.AppointmentStats.Completed,
		domain.StatusCanceled:  &out.AppointmentStats.Canceled,
	}
	for status, dest := range byStatus {
		if err := h.db.Model(&models.Appointment{}).
			Where("status = ?", string(status)).
			Count(dest).Error; err != nil {
			httpresp.Error(c, err)
			return
		}
	}

	httpresp.OK(c, out)
}
