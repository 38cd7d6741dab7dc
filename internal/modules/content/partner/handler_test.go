package partner

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createWith(fields url.Values) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil, nil, nil) // validation failures never reach the service
	h.RegisterAdminRoutes(r.Group("/api/v1/admin"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/partners", strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRequiresNameLinkAndLogo(t *testing.T) {
	w := createWith(url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name missing")

	w = createWith(url.Values{"name": {"Red Crescent"}})
	assert.Equal(t, http.StatusBadRequest, w.Code, "link missing")
	assert.Contains(t, w.Body.String(), "link is required")

	w = createWith(url.Values{"name": {"Red Crescent"}, "link": {"https://example.com"}})
	assert.Equal(t, http.StatusBadRequest, w.Code, "logo missing")
	assert.Contains(t, w.Body.String(), "logo")
}
