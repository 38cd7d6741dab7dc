// Package form converts multipart form fields into typed values so
// services only ever see real booleans and integers.
package form

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// String returns a trimmed form value, empty when absent.
func String(c *gin.Context, key string) string {
	v, _ := c.GetPostForm(key)
	return strings.TrimSpace(v)
}

// Opt returns a pointer to the trimmed value, or nil when the field was
// not part of the request.
func Opt(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	return &v
}

// Bool parses a form flag, returning def when absent or unparseable.
func Bool(c *gin.Context, key string, def bool) bool {
	v, ok := c.GetPostForm(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// OptBool returns nil when the field was not part of the request.
func OptBool(c *gin.Context, key string) *bool {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &b
}

// Int parses a numeric field, returning def when absent or unparseable.
func Int(c *gin.Context, key string, def int) int {
	v, ok := c.GetPostForm(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// OptInt returns nil when the field was not part of the request.
func OptInt(c *gin.Context, key string) *int {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}
