package page

import (
	"github.com/gin-gonic/gin"

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pages")
	g.GET("", h.listPublic)
	g.GET("/:key", h.getPublicByKey)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pages")
	g.GET("", h.listAdmin)
	g.GET("/:key", h.getByKey)
	g.POST("", h.create)
	g.PUT("/:key", h.upsert)
	g.DELETE("/:key", h.delete)
}

func (h *Handler) listPublic(c *gin.Context) {
	items, err := h.svc.ListPublic()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeList}
	response.OK(c, h.proj.Pages(items, ctx))
}

func (h *Handler) getPublicByKey(c *gin.Context) {
	item, err := h.svc.GetPublicByKey(c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Page not found")
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Page(*item, ctx))
}

func (h *Handler) listAdmin(c *gin.Context) {
	items, err := h.svc.ListAdmin()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, h.proj.Pages(items, ctx))
}

func (h *Handler) getByKey(c *gin.Context) {
	item, err := h.svc.GetByKey(c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Page not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Page(*item, ctx))
}

type createDTO struct {
	Key      string `json:"key" binding:"required"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive"`
}

type updateDTO struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"isActive"`
}

func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "key is required")
		return
	}

	in := CreateInput{Key: dto.Key, Title: dto.Title, Content: dto.Content, IsActive: true}
	if dto.IsActive != nil {
		in.IsActive = *dto.IsActive
	}

	item, err := h.svc.Create(&in)
	if err != nil {
		switch err {
		case ErrKeyRequired:
			response.BadRequest(c, err.Error())
		case ErrKeyTaken:
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeCreated}
	response.Created(c, h.proj.Page(*item, ctx), "Page created successfully")
}

func (h *Handler) upsert(c *gin.Context) {
	var dto updateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	in := UpdateInput{Title: dto.Title, Content: dto.Content, IsActive: dto.IsActive}
	item, created, err := h.svc.Upsert(c.Param("key"), &in)
	if err != nil {
		switch err {
		case ErrKeyRequired:
			response.BadRequest(c, err.Error())
		case ErrKeyTaken:
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	if created {
		ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeCreated}
		response.Created(c, h.proj.Page(*item, ctx), "Page created successfully")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeUpdated}
	response.OKMsg(c, h.proj.Page(*item, ctx), "Page updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	item, err := h.svc.Delete(c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Page not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDeleted}
	response.OKMsg(c, h.proj.Page(*item, ctx), "Page deleted successfully")
}
