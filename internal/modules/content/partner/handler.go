package partner

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/form"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/view"
)

type Handler struct {
	svc   *Service
	store *upload.Store
	proj  *view.Projector
}

func NewHandler(svc *Service, store *upload.Store, proj *view.Projector) *Handler {
	return &Handler{svc: svc, store: store, proj: proj}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/partners", h.listPublic)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/partners")
	g.GET("", h.listAdmin)
	g.GET("/:id", h.getByID)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) listPublic(c *gin.Context) {
	items, err := h.svc.ListPublic()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeList}
	response.OK(c, h.proj.Partners(items, ctx))
}

func (h *Handler) listAdmin(c *gin.Context) {
	items, err := h.svc.ListAdmin()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, h.proj.Partners(items, ctx))
}

func (h *Handler) getByID(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Partner not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Partner(*item, ctx))
}

func (h *Handler) create(c *gin.Context) {
	in := CreateInput{
		Name:      form.String(c, "name"),
		Link:      form.String(c, "link"),
		LogoURL:   form.String(c, "logoUrl"),
		SortOrder: form.Int(c, "sortOrder", 0),
		IsActive:  form.Bool(c, "isActive", true),
	}
	if in.Name == "" {
		response.BadRequest(c, "name is required")
		return
	}
	if in.Link == "" {
		response.BadRequest(c, "link is required")
		return
	}

	if url, ok := h.saveFile(c, "logo"); ok {
		in.LogoURL = url
	} else if c.IsAborted() {
		return
	}
	if in.LogoURL == "" {
		response.BadRequest(c, "logo file or logoUrl is required")
		return
	}

	item, err := h.svc.Create(&in)
	if err != nil {
		if err == ErrInvalidLink {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeCreated}
	response.Created(c, h.proj.Partner(*item, ctx), "Partner created successfully")
}

func (h *Handler) update(c *gin.Context) {
	in := UpdateInput{
		Name:      form.Opt(c, "name"),
		Link:      form.Opt(c, "link"),
		SortOrder: form.OptInt(c, "sortOrder"),
		IsActive:  form.OptBool(c, "isActive"),
	}

	if url, ok := h.saveFile(c, "logo"); ok {
		in.LogoURL = &url
	} else if c.IsAborted() {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		if err == ErrInvalidLink {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Partner not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeUpdated}
	response.OKMsg(c, h.proj.Partner(*item, ctx), "Partner updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	item, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Partner not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDeleted}
	response.OKMsg(c, h.proj.Partner(*item, ctx), "Partner deleted successfully")
}

func (h *Handler) saveFile(c *gin.Context, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", false
	}
	url, err := h.store.Save(c.Request.Context(), fh)
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", false
	}
	return url, true
}
