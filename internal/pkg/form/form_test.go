package form

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithForm(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestStringAndOpt(t *testing.T) {
	c := contextWithForm(t, url.Values{"title": {"  Hello  "}})

	assert.Equal(t, "Hello", String(c, "title"))
	assert.Equal(t, "", String(c, "missing"))

	got := Opt(c, "title")
	require.NotNil(t, got)
	assert.Equal(t, "Hello", *got)
	assert.Nil(t, Opt(c, "missing"))
}

func TestBoolParsing(t *testing.T) {
	c := contextWithForm(t, url.Values{
		"yes":  {"true"},
		"no":   {"false"},
		"junk": {"banana"},
	})

	assert.True(t, Bool(c, "yes", false))
	assert.False(t, Bool(c, "no", true))
	assert.True(t, Bool(c, "junk", true), "unparseable falls back to default")
	assert.False(t, Bool(c, "missing", false))

	require.NotNil(t, OptBool(c, "yes"))
	assert.Nil(t, OptBool(c, "junk"))
	assert.Nil(t, OptBool(c, "missing"))
}

func TestIntParsing(t *testing.T) {
	c := contextWithForm(t, url.Values{"order": {"7"}, "junk": {"x"}})

	assert.Equal(t, 7, Int(c, "order", 0))
	assert.Equal(t, 3, Int(c, "junk", 3))
	assert.Equal(t, 5, Int(c, "missing", 5))

	got := OptInt(c, "order")
	require.NotNil(t, got)
	assert.Equal(t, 7, *got)
	assert.Nil(t, OptInt(c, "missing"))
}
