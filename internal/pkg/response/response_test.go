package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	h(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		OKMsg(c, gin.H{"id": "1"}, "done")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	require.NotNil(t, body["data"])
	assert.Nil(t, body["errors"])
}

func TestFailureEnvelope(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		NotFound(c, "Course not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Course not found", body["message"])
}

func TestUnauthorizedDefaultMessage(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		Unauthorized(c, "")
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", body["message"])
}

func TestInternalError(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		InternalError(c, nil)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body["message"])
}
