package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/auth"
	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/models"
	"github.com/soulsyync/soulsyync-api/internal/routes"
	"github.com/soulsyync/soulsyync-api/internal/testutil"
)

type env struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func setup(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := testutil.NewTestDB(t)
	cfg := testutil.NewTestConfig()
	revoker := testutil.NewTestRedis(t)

	router := gin.New()
	routes.RegisterRoutes(router, database, cfg, revoker)

	return &env{router: router, db: database, cfg: cfg}
}

func (e *env) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user, e.cfg.JWTSecret, e.cfg.JWTExpiry)
	require.NoError(t, err)
	return token
}

func (e *env) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, httpresp.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var envlp httpresp.Envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envlp))
	}
	return w, envlp
}

func TestRegisterAndLogin(t *testing.T) {
	e := setup(t)

	w, resp := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "luna",
		"password": "moonlight",
		"email":    "luna@example.com",
		"fullName": "Luna Moth",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "user", user["role"])
	_, leaked := user["password"]
	assert.False(t, leaked)

	t.Run("duplicate username", func(t *testing.T) {
		w, resp := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "luna", "password": "different1", "email": "other@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username already exists", resp.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w, resp := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "sol", "password": "different1", "email": "luna@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already exists", resp.Message)
	})

	t.Run("login with the new credentials", func(t *testing.T) {
		w, resp := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "luna", "password": "moonlight",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Login successful", resp.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		w, resp := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "luna", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", resp.Message)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	e := setup(t)
	user := testutil.CreateUser(t, e.db, models.RoleUser)
	token := e.tokenFor(t, user)

	w, _ := e.do(t, http.MethodGet, "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := e.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", resp.Message)

	w, _ = e.do(t, http.MethodGet, "/api/auth/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleEscalationBlocked(t *testing.T) {
	e := setup(t)
	user := testutil.CreateUser(t, e.db, models.RoleUser)
	admin := testutil.CreateUser(t, e.db, models.RoleAdmin)

	path := fmt.Sprintf("/api/users/%d", user.ID)

	t.Run("self promotion is silently ignored", func(t *testing.T) {
		w, _ := e.do(t, http.MethodPut, path, e.tokenFor(t, user), gin.H{
			"bio": "seeker of truths", "role": "admin",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var got models.User
		require.NoError(t, e.db.First(&got, user.ID).Error)
		assert.Equal(t, models.RoleUser, got.Role)
		assert.Equal(t, "seeker of truths", got.Bio)
	})

	t.Run("admin promotion sticks", func(t *testing.T) {
		w, _ := e.do(t, http.MethodPut, path, e.tokenFor(t, admin), gin.H{"role": "admin"})
		require.Equal(t, http.StatusOK, w.Code)

		var got models.User
		require.NoError(t, e.db.First(&got, user.ID).Error)
		assert.Equal(t, models.RoleAdmin, got.Role)
	})

	t.Run("stranger cannot edit someone else", func(t *testing.T) {
		other := testutil.CreateUser(t, e.db, models.RoleUser)
		w, _ := e.do(t, http.MethodPut, path, e.tokenFor(t, other), gin.H{"bio": "hax"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHoroscopeDuplicateGuard(t *testing.T) {
	e := setup(t)
	admin := testutil.CreateUser(t, e.db, models.RoleAdmin)
	token := e.tokenFor(t, admin)

	body := gin.H{"sign": "aries", "content": "Bold moves pay off today.", "date": "2026-09-01"}

	w, _ := e.do(t, http.MethodPost, "/api/horoscopes", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := e.do(t, http.MethodPost, "/api/horoscopes", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A horoscope for this sign and date already exists", resp.Message)

	t.Run("sign lookup returns one or 404", func(t *testing.T) {
		w, _ := e.do(t, http.MethodGet, "/api/horoscopes?sign=aries&date=2026-09-01", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, resp := e.do(t, http.MethodGet, "/api/horoscopes?sign=virgo&date=2026-09-01", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Horoscope not found", resp.Message)
	})
}

func TestSubscriberLifecycle(t *testing.T) {
	e := setup(t)

	w, resp := e.do(t, http.MethodPost, "/api/subscribers", "", gin.H{"email": "fan@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Subscribed successfully", resp.Message)

	w, resp = e.do(t, http.MethodPost, "/api/subscribers", "", gin.H{"email": "fan@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already subscribed", resp.Message)

	require.NoError(t, e.db.Model(&models.Subscriber{}).
		Where("email = ?", "fan@example.com").
		Update("subscribed", false).Error)

	w, resp = e.do(t, http.MethodPost, "/api/subscribers", "", gin.H{"email": "fan@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Subscription reactivated", resp.Message)

	var count int64
	e.db.Model(&models.Subscriber{}).Where("email = ?", "fan@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestBlogPostFilters(t *testing.T) {
	e := setup(t)
	user := testutil.CreateUser(t, e.db, models.RoleUser)
	token := e.tokenFor(t, user)

	posts := []gin.H{
		{"title": "Mercury Retrograde Survival", "content": "...", "category": "Astrology", "featured": true},
		{"title": "Grounding Rituals", "content": "...", "category": "Meditation"},
		{"title": "Full Moon Journaling", "content": "...", "category": "Astrology"},
	}
	for _, p := range posts {
		w, _ := e.do(t, http.MethodPost, "/api/blog-posts", token, p)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	listLen := func(path string) int {
		w, resp := e.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		return len(resp.Data.([]any))
	}

	assert.Equal(t, 3, listLen("/api/blog-posts"))
	assert.Equal(t, 2, listLen("/api/blog-posts?category=Astrology"))
	assert.Equal(t, 1, listLen("/api/blog-posts?featured=true"))
	// Category wins when both filters are present.
	assert.Equal(t, 1, listLen("/api/blog-posts?category=Meditation&featured=true"))
}

func TestServiceMutationIsAdminOnly(t *testing.T) {
	e := setup(t)
	user := testutil.CreateUser(t, e.db, models.RoleUser)
	admin := testutil.CreateUser(t, e.db, models.RoleAdmin)

	body := gin.H{"name": "Dream Interpretation", "description": "...", "price": 6000, "duration": 30}

	w, _ := e.do(t, http.MethodPost, "/api/services", e.tokenFor(t, user), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = e.do(t, http.MethodPost, "/api/services", e.tokenFor(t, admin), body)
	assert.Equal(t, http.StatusCreated, w.Code)

	t.Run("listing is public and name ordered", func(t *testing.T) {
		testutil.CreateService(t, e.db) // "Tarot Reading"

		w, resp := e.do(t, http.MethodGet, "/api/services", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		items := resp.Data.([]any)
		require.Len(t, items, 2)
		assert.Equal(t, "Dream Interpretation", items[0].(map[string]any)["name"])
		assert.Equal(t, "Tarot Reading", items[1].(map[string]any)["name"])
	})
}

func TestAnalytics(t *testing.T) {
	e := setup(t)
	user := testutil.CreateUser(t, e.db, models.RoleUser)
	admin := testutil.CreateUser(t, e.db, models.RoleAdmin)
	svc := testutil.CreateService(t, e.db)

	testutil.CreateAppointment(t, e.db, user.ID, svc.ID, "2026-09-10", "09:00", "pending")
	testutil.CreateAppointment(t, e.db, user.ID, svc.ID, "2026-09-11", "09:00", "pending")
	testutil.CreateAppointment(t, e.db, user.ID, svc.ID, "2026-09-12", "09:00", "confirmed")
	testutil.CreateTestimonial(t, e.db, true)
	testutil.CreateTestimonial(t, e.db, false)

	t.Run("non-admin is forbidden", func(t *testing.T) {
		w, _ := e.do(t, http.MethodGet, "/api/analytics", e.tokenFor(t, user), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	w, resp := e.do(t, http.MethodGet, "/api/analytics", e.tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	assert.EqualValues(t, 2, data["userCount"])
	assert.EqualValues(t, 1, data["testimonialCount"])

	stats := data["appointmentStats"].(map[string]any)
	assert.EqualValues(t, 3, stats["total"])
	assert.EqualValues(t, 2, stats["pending"])
	assert.EqualValues(t, 1, stats["confirmed"])
	assert.EqualValues(t, 0, stats["completed"])
	assert.EqualValues(t, 0, stats["canceled"])
}
