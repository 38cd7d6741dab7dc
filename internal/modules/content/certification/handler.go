package certification

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
	g := rg.Group("/certification")
	g.GET("", h.listPublic)
	g.GET("/:slug", h.getBySlug)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/certification")
	g.GET("", h.listAdmin)
	g.GET("/:id", h.getByID)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.PATCH("/:id/active", h.toggleActive)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) listPublic(c *gin.Context) {
	items, err := h.svc.ListPublic()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeList}
	response.OK(c, h.proj.Certifications(items, ctx))
}

func (h *Handler) getBySlug(c *gin.Context) {
	item, err := h.svc.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Certification service not found")
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Certification(*item, ctx))
}

func (h *Handler) listAdmin(c *gin.Context) {
	items, err := h.svc.ListAdmin()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, h.proj.Certifications(items, ctx))
}

func (h *Handler) getByID(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Certification service not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Certification(*item, ctx))
}

func (h *Handler) create(c *gin.Context) {
	in := CreateInput{
		Title:            form.String(c, "title"),
		Slug:             form.String(c, "slug"),
		ShortDescription: form.String(c, "shortDescription"),
		Description:      form.String(c, "description"),
		HeroSubtitle:     form.String(c, "heroSubtitle"),
		SortOrder:        form.Int(c, "sortOrder", 0),
		IsActive:         form.Bool(c, "isActive", true),
	}
	if in.Title == "" {
		response.BadRequest(c, "title is required")
		return
	}

	if url, ok := h.saveFile(c, "cardImage"); ok {
		in.CardImageURL = url
	} else if c.IsAborted() {
		return
	}
	if url, ok := h.saveFile(c, "heroImage"); ok {
		in.HeroImageURL = url
	} else if c.IsAborted() {
		return
	}
	if url, ok := h.saveFile(c, "innerImage"); ok {
		in.InnerImageURL = url
	} else if c.IsAborted() {
		return
	}

	item, err := h.svc.Create(&in)
	if err != nil {
		if err == ErrSlugTaken || err == ErrSlugFromTitle {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeCreated}
	response.Created(c, h.proj.Certification(*item, ctx), "Certification service created successfully")
}

func (h *Handler) update(c *gin.Context) {
	in := UpdateInput{
		Title:            form.Opt(c, "title"),
		Slug:             form.Opt(c, "slug"),
		ShortDescription: form.Opt(c, "shortDescription"),
		Description:      form.Opt(c, "description"),
		HeroSubtitle:     form.Opt(c, "heroSubtitle"),
		SortOrder:        form.OptInt(c, "sortOrder"),
		IsActive:         form.OptBool(c, "isActive"),
	}

	if url, ok := h.saveFile(c, "cardImage"); ok {
		in.CardImageURL = &url
	} else if c.IsAborted() {
		return
	}
	if url, ok := h.saveFile(c, "heroImage"); ok {
		in.HeroImageURL = &url
	} else if c.IsAborted() {
		return
	}
	if url, ok := h.saveFile(c, "innerImage"); ok {
		in.InnerImageURL = &url
	} else if c.IsAborted() {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		if err == ErrSlugTaken || err == ErrSlugFromTitle {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Certification service not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeUpdated}
	response.OKMsg(c, h.proj.Certification(*item, ctx), "Certification service updated successfully")
}

func (h *Handler) toggleActive(c *gin.Context) {
	var body struct {
		IsActive *bool `json:"isActive"`
	}
	_ = c.ShouldBindJSON(&body)

	item, err := h.svc.ToggleActive(c.Param("id"), body.IsActive)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Certification service not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeToggled}
	response.OKMsg(c, h.proj.Certification(*item, ctx), "Certification service status updated")
}

func (h *Handler) delete(c *gin.Context) {
	item, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Certification service not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDeleted}
	response.OKMsg(c, h.proj.Certification(*item, ctx), "Certification service deleted successfully")
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
