package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/middleware"
	"github.com/soulsyync/soulsyync-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateUserRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	FullName     *string `json:"fullName"`
	ProfileImage *string `json:"profileImage"`
	Bio          *string `json:"bio"`
	Role         *string `json:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("username ASC").Find(&users).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid user id")
		return
	}

	if !middleware.Principal(c).CanAccess(id) {
		httpresp.Fail(c, 403, "Forbidden")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "User not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, user)
}

// Update lets a user edit their own profile and an admin edit anyone.
// The role field only takes effect for admins; a non-admin sending a
// role keeps their stored role untouched.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid user id")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 404, "User not found")
			return
		}
		httpresp.Error(c, err)
		return
	}

	p := middleware.Principal(c)
	if !p.CanAccess(user.ID) {
		httpresp.Fail(c, 403, "Forbidden")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httpresp.Error(c, err)
			return
		}
		user.Password = string(hashed)
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil && p.IsAdmin() {
		user.Role = models.Role(*req.Role)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OKMessage(c, "User updated successfully", user)
}
