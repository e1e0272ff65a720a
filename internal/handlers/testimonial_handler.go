package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/middleware"
	ucTestimonial "github.com/soulsyync/soulsyync-api/internal/usecase/testimonial"
)

type TestimonialHandler struct {
	submit  *ucTestimonial.SubmitTestimonial
	list    *ucTestimonial.ListTestimonials
	approve *ucTestimonial.ApproveTestimonial
	delete  *ucTestimonial.DeleteTestimonial
}

func NewTestimonialHandler(
	submit *ucTestimonial.SubmitTestimonial,
	list *ucTestimonial.ListTestimonials,
	approve *ucTestimonial.ApproveTestimonial,
	del *ucTestimonial.DeleteTestimonial,
) *TestimonialHandler {
	return &TestimonialHandler{
		submit:  submit,
		list:    list,
		approve: approve,
		delete:  del,
	}
}

type SubmitTestimonialRequest struct {
	Name      string `json:"name" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	ServiceID *uint  `json:"serviceId"`
}

type BulkIDsRequest struct {
	IDs []uint `json:"ids"`
}

func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	t, err := h.submit.Execute(c.Request.Context(), middleware.Principal(c),
		ucTestimonial.SubmitTestimonialInput{
			Name:      req.Name,
			Content:   req.Content,
			Rating:    req.Rating,
			ServiceID: req.ServiceID,
		})
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Created(c, "Testimonial submitted for review", t)
}

// List is public: approved testimonials, optionally for one service.
func (h *TestimonialHandler) List(c *gin.Context) {
	var serviceID *uint
	if raw := c.Query("serviceId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httpresp.Fail(c, 400, "Invalid service id")
			return
		}
		sid := uint(id)
		serviceID = &sid
	}

	ts, err := h.list.Execute(c.Request.Context(), serviceID)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, ts)
}

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	ts, err := h.list.ExecuteAll(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, ts)
}

func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid testimonial id")
		return
	}

	t, err := h.approve.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OKMessage(c, "Testimonial approved successfully", t)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid testimonial id")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Message(c, "Testimonial deleted successfully")
}

func (h *TestimonialHandler) BulkApprove(c *gin.Context) {
	var req BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		httpresp.Fail(c, 400, "Invalid testimonial IDs")
		return
	}

	count, err := h.approve.ExecuteBulk(c.Request.Context(), middleware.Principal(c), req.IDs)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Message(c, fmt.Sprintf("%d testimonials approved successfully", count))
}

func (h *TestimonialHandler) BulkDelete(c *gin.Context) {
	var req BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		httpresp.Fail(c, 400, "Invalid testimonial IDs")
		return
	}

	count, err := h.delete.ExecuteBulk(c.Request.Context(), middleware.Principal(c), req.IDs)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Message(c, fmt.Sprintf("%d testimonials deleted successfully", count))
}
