package heroslide

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
	rg.GET("/home/hero-slides", h.listPublic)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/hero-slides")
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
	response.OK(c, h.proj.HeroSlides(items, ctx))
}

func (h *Handler) listAdmin(c *gin.Context) {
	items, err := h.svc.ListAdmin()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, h.proj.HeroSlides(items, ctx))
}

func (h *Handler) getByID(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Hero slide not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDetail}
	response.OK(c, h.proj.HeroSlide(*item, ctx))
}

func (h *Handler) create(c *gin.Context) {
	in := CreateInput{
		Type:       form.String(c, "type"),
		Title:      form.String(c, "title"),
		Subtitle:   form.String(c, "subtitle"),
		MediaURL:   form.String(c, "mediaUrl"),
		ButtonText: form.String(c, "buttonText"),
		ButtonLink: form.String(c, "buttonLink"),
		Order:      form.Int(c, "order", 0),
		IsActive:   form.Bool(c, "isActive", true),
	}
	if in.Title == "" {
		response.BadRequest(c, "title is required")
		return
	}

	if url, ok := h.saveFile(c, "media"); ok {
		in.MediaURL = url
	} else if c.IsAborted() {
		return
	}
	if in.MediaURL == "" {
		response.BadRequest(c, "media file or mediaUrl is required")
		return
	}

	item, err := h.svc.Create(&in)
	if err != nil {
		if err == ErrInvalidType {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeCreated}
	response.Created(c, h.proj.HeroSlide(*item, ctx), "Hero slide created successfully")
}

func (h *Handler) update(c *gin.Context) {
	in := UpdateInput{
		Type:       form.Opt(c, "type"),
		Title:      form.Opt(c, "title"),
		Subtitle:   form.Opt(c, "subtitle"),
		MediaURL:   form.Opt(c, "mediaUrl"),
		ButtonText: form.Opt(c, "buttonText"),
		ButtonLink: form.Opt(c, "buttonLink"),
		Order:      form.OptInt(c, "order"),
		IsActive:   form.OptBool(c, "isActive"),
	}

	if url, ok := h.saveFile(c, "media"); ok {
		in.MediaURL = &url
	} else if c.IsAborted() {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		if err == ErrInvalidType {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Hero slide not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeUpdated}
	response.OKMsg(c, h.proj.HeroSlide(*item, ctx), "Hero slide updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	item, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "Hero slide not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDeleted}
	response.OKMsg(c, h.proj.HeroSlide(*item, ctx), "Hero slide deleted successfully")
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
