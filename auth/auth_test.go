package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/profileranker/backend/config"
	"github.com/profileranker/backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWT() *JWTService {
	return NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
}

func newTestUser(role string) *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Email: "ar@example.com",
		Role:  role,
	}
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newTestJWT()
	user := newTestUser(models.RoleARRequestor)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleARRequestor, claims.Role)
}

func TestJWT_RejectsForeignSecret(t *testing.T) {
	token, err := newTestJWT().GenerateToken(newTestUser(models.RoleARRequestor))
	require.NoError(t, err)

	other := NewJWTService(&config.Config{JWTSecret: "another-secret", JWTExpiryHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_RejectsPlainUserID(t *testing.T) {
	_, err := newTestJWT().ValidateToken(primitive.NewObjectID().Hex())
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.True(t, CheckPassword("s3cret!", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func newGatedRouter(svc *JWTService) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", AuthMiddleware(svc))
	api.GET("/any", func(c *gin.Context) { c.String(http.StatusOK, GetAuthClaims(c).Email) })
	api.GET("/admin", RequireRole(models.RoleRecruiterAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	pages := r.Group("/", PageGate(svc))
	pages.GET("/ar-dashboard/*rest", func(c *gin.Context) { c.Status(http.StatusOK) })
	pages.GET("/recruiter-admin/*rest", func(c *gin.Context) { c.Status(http.StatusOK) })
	pages.GET("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := newTestJWT()
	r := newGatedRouter(svc)
	token, err := svc.GenerateToken(newTestUser(models.RoleARRequestor))
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/any", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/any", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ar@example.com", w.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/any", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("forged role cookie is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
		req.AddCookie(&http.Cookie{Name: RoleCookie, Value: models.RoleRecruiterAdmin})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPageGate(t *testing.T) {
	svc := newTestJWT()
	r := newGatedRouter(svc)
	arToken, err := svc.GenerateToken(newTestUser(models.RoleARRequestor))
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"anonymous AR page", "/ar-dashboard/view", "", http.StatusFound},
		{"AR on AR page", "/ar-dashboard/view", arToken, http.StatusOK},
		{"AR on admin page", "/recruiter-admin/upload", arToken, http.StatusFound},
		{"ungated page", "/login", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.token})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusFound {
				assert.Equal(t, "/", w.Header().Get("Location"))
			}
		})
	}
}

func TestRequiredPageRole(t *testing.T) {
	role, gated := requiredPageRole("/ar-dashboard")
	assert.True(t, gated)
	assert.Equal(t, models.RoleARRequestor, role)

	_, gated = requiredPageRole("/ar-dashboards-public")
	assert.False(t, gated)
}
