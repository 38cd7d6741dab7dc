package user

import (
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

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	users, page, err := h.svc.List(q, c.Query("role"), c.Query("search"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, response.Paged{Items: users, Pagination: page})
}

func (h *Handler) getByID(c *gin.Context) {
	u, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, u)
}
