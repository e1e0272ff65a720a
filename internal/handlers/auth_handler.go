package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/auth"
	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/middleware"
	"github.com/soulsyync/soulsyync-api/internal/models"
	"github.com/soulsyync/soulsyync-api/internal/tokens"
	"github.com/soulsyync/soulsyync-api/pkg/logger"
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	revoker *tokens.Revoker
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, revoker *tokens.Revoker) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, revoker: revoker}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httpresp.Fail(c, 400, "Username already exists")
		return
	}

	h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httpresp.Fail(c, 400, "Email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	// Registration always yields a regular user; only an admin can
	// promote later through the user update path.
	user := models.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
		FullName: req.FullName,
		Role:     models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httpresp.Error(c, err)
		return
	}

	token, err := auth.GenerateToken(&user, h.config.JWTSecret, h.config.JWTExpiry)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	logger.Log.Info("user registered", zap.String("username", user.Username))

	httpresp.Created(c, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	logger.Log.Info("authentication attempt", zap.String("username", req.Username))

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Warn("login failed, user not found", zap.String("username", req.Username))
			httpresp.Fail(c, 401, "Invalid credentials")
			return
		}
		httpresp.Error(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Log.Warn("login failed, bad password", zap.String("username", req.Username))
		httpresp.Fail(c, 401, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(&user, h.config.JWTSecret, h.config.JWTExpiry)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	logger.Log.Info("login successful",
		zap.String("username", user.Username), zap.String("role", string(user.Role)))

	httpresp.OKMessage(c, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the presented token's jti until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenID)
	if jti == "" {
		httpresp.Message(c, "Logged out successfully")
		return
	}

	var ttl time.Duration
	if v, ok := c.Get(middleware.ContextTokenExpiry); ok {
		if exp, ok := v.(time.Time); ok {
			ttl = time.Until(exp)
		}
	}

	if err := h.revoker.Revoke(c.Request.Context(), jti, ttl); err != nil {
		httpresp.Fail(c, 500, "Failed to logout")
		return
	}

	httpresp.Message(c, "Logged out successfully")
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	p := middleware.Principal(c)

	var user models.User
	if err := h.db.First(&user, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, 401, "Not authenticated")
			return
		}
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, user)
}
