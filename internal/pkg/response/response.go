package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body: {success, data, message, errors}.
// Every endpoint, success or failure, serializes to this shape.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message interface{} `json:"message"`
	Errors  interface{} `json:"errors"`
}

// Pagination is the metadata attached to paged list responses.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPage   int   `json:"totalPage"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"hasNextPage"`
}

// Paged wraps a list payload with its pagination metadata.
type Paged struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

func success(c *gin.Context, status int, data interface{}, message string) {
	var msg interface{}
	if message != "" {
		msg = message
	}
	c.JSON(status, Envelope{Success: true, Data: data, Message: msg})
}

func failure(c *gin.Context, status int, message string, errs interface{}) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message, Errors: errs})
}

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data, "")
}

// OKMsg sends a 200 response with a message.
func OKMsg(c *gin.Context, data interface{}, message string) {
	success(c, http.StatusOK, data, message)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}, message string) {
	success(c, http.StatusCreated, data, message)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	failure(c, http.StatusBadRequest, message, nil)
}

// BadRequestErrors sends a 400 error response with field errors.
func BadRequestErrors(c *gin.Context, message string, errs interface{}) {
	failure(c, http.StatusBadRequest, message, errs)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	failure(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Insufficient permissions"
	}
	failure(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	failure(c, http.StatusNotFound, message, nil)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	failure(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	failure(c, http.StatusConflict, message, nil)
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context, message string) {
	failure(c, http.StatusTooManyRequests, message, nil)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	msg := "Internal Server Error"
	if err != nil {
		msg = err.Error()
	}
	failure(c, http.StatusInternalServerError, msg, nil)
}
