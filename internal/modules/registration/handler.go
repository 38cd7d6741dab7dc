package registration

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/middleware"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/pagination"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/view"
)

type Handler struct {
	svc  *Service
	proj *view.Projector
}

func NewHandler(svc *Service, proj *view.Projector) *Handler {
	return &Handler{svc: svc, proj: proj}
}

// RegisterRoutes mounts the authenticated user-facing endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/course-registrations", authMW)
	g.POST("/register", h.register)
	g.GET("/my-registrations", h.myRegistrations)
	g.GET("/course/:courseId", h.forCourse)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/course-registrations")
	g.GET("", h.listAdmin)
	g.GET("/course/:courseId", h.listAdminForCourse)
	g.GET("/:id", h.getByID)
	g.PUT("/:id/status", h.updateStatus)
}

type registerDTO struct {
	CourseID string `json:"courseId" binding:"required"`
	Notes    string `json:"notes"`
}

func (h *Handler) register(c *gin.Context) {
	var dto registerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "courseId is required")
		return
	}

	reg, err := h.svc.Register(middleware.CurrentUserID(c), dto.CourseID, dto.Notes)
	if err != nil {
		switch err {
		case ErrCourseNotFound:
			response.NotFound(c, err.Error())
		case ErrCourseUnavailable:
			response.BadRequest(c, err.Error())
		case ErrAlreadyRegistered:
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeCreated}
	response.Created(c, h.proj.Registration(*reg, ctx), "Registration submitted successfully")
}

func (h *Handler) myRegistrations(c *gin.Context) {
	regs, err := h.svc.ListForUser(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeList}
	response.OK(c, h.proj.Registrations(regs, ctx))
}

func (h *Handler) forCourse(c *gin.Context) {
	reg, err := h.svc.GetForUserAndCourse(middleware.CurrentUserID(c), c.Param("courseId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if reg == nil {
		response.OK(c, gin.H{"isRegistered": false})
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeDetail}
	response.OK(c, gin.H{"isRegistered": true, "registration": h.proj.Registration(*reg, ctx)})
}

func (h *Handler) listAdmin(c *gin.Context) {
	q := pagination.FromContext(c)
	regs, page, err := h.svc.ListAdmin(q, c.Query("status"), "")
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, response.Paged{Items: h.proj.Registrations(regs, ctx), Pagination: page})
}

func (h *Handler) listAdminForCourse(c *gin.Context) {
	q := pagination.FromContext(c)
	regs, page, err := h.svc.ListAdmin(q, c.Query("status"), c.Param("courseId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, response.Paged{Items: h.proj.Registrations(regs, ctx), Pagination: page})
}

func (h *Handler) getByID(c *gin.Context) {
	reg, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if reg == nil {
		response.NotFound(c, "Registration not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Registration(*reg, ctx))
}

type statusDTO struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var dto statusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	reg, err := h.svc.UpdateStatus(c.Param("id"), dto.Status, dto.Notes)
	if err != nil {
		if err == ErrInvalidStatus {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if reg == nil {
		response.NotFound(c, "Registration not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeUpdated}
	response.OKMsg(c, h.proj.Registration(*reg, ctx), "Registration status updated")
}
