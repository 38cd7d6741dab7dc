package contact

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/pagination"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mw...), h.submit)
	rg.POST("/contact", handlers...)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/contact-messages")
	g.GET("", h.listAdmin)
	g.GET("/:id", h.getByID)
	g.PUT("/:id", h.updateStatus)
	g.DELETE("/:id", h.delete)
}

type submitDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) submit(c *gin.Context) {
	var dto submitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "name, email and message are required")
		return
	}

	msg, err := h.svc.Create(&CreateInput{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Subject: dto.Subject,
		Message: dto.Message,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// Short human-quotable reference derived from the record id.
	compact := strings.ToUpper(strings.ReplaceAll(msg.ID, "-", ""))
	if len(compact) > 8 {
		compact = compact[:8]
	}
	response.Created(c, gin.H{
		"message":     msg,
		"referenceId": "CM-" + compact,
		"receivedAt":  time.Now().UTC().Format(time.RFC3339),
		"nextSteps":   "Our team will get back to you within 2 business days.",
	}, "Message sent successfully")
}

func (h *Handler) listAdmin(c *gin.Context) {
	q := pagination.FromContext(c)
	msgs, page, err := h.svc.ListAdmin(q, c.Query("status"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, response.Paged{Items: msgs, Pagination: page})
}

func (h *Handler) getByID(c *gin.Context) {
	msg, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if msg == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OK(c, msg)
}

type statusDTO struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var dto statusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	msg, err := h.svc.UpdateStatus(c.Param("id"), dto.Status)
	if err != nil {
		if err == ErrInvalidStatus {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if msg == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OKMsg(c, msg, "Message status updated")
}

func (h *Handler) delete(c *gin.Context) {
	msg, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if msg == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OKMsg(c, msg, "Message deleted successfully")
}
