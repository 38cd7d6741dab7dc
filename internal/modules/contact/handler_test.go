package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func submitWith(body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil) // validation failures never reach the service
	h.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRequiresFields(t *testing.T) {
	w := submitWith(`{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = submitWith(`{"name":"A","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "email missing")

	w = submitWith(`{"name":"A","email":"not-an-email","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "email must be valid")
}

func TestUpdateStatusRequiresBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil)
	h.RegisterAdminRoutes(r.Group("/api/v1/admin"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/contact-messages/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
