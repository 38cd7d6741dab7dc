package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/jwt"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": CurrentUserID(c)})
	})
	r.GET("/admin", Auth(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsValidAccessToken(t *testing.T) {
	jwt.SetSecrets("access-secret", "refresh-secret")
	token, err := jwt.SignAccess("u1", "u@example.com", models.RoleUser)
	require.NoError(t, err)

	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	jwt.SetSecrets("access-secret", "refresh-secret")
	token, err := jwt.SignAccess("u1", "u@example.com", models.RoleUser)
	require.NoError(t, err)

	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	jwt.SetSecrets("access-secret", "refresh-secret")
	token, err := jwt.SignAccess("a1", "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)

	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshTokenRejectedOnProtectedRoute(t *testing.T) {
	jwt.SetSecrets("access-secret", "refresh-secret")
	token, err := jwt.SignRefresh("u1", "u@example.com", models.RoleUser)
	require.NoError(t, err)

	r := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
