package course

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

// RegisterRoutes mounts the public catalogue endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/courses")
	g.GET("", h.listPublic)
	g.GET("/:slug", h.getBySlug)
}

// RegisterAdminRoutes mounts the admin CRUD endpoints. The caller
// wraps the group with auth and admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/courses")
	g.GET("", h.listAdmin)
	g.GET("/:id", h.getByID)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.PATCH("/:id/availability", h.toggleAvailability)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) listPublic(c *gin.Context) {
	courses, err := h.svc.ListPublic()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeList}
	response.OK(c, h.proj.Courses(courses, ctx))
}

func (h *Handler) getBySlug(c *gin.Context) {
	course, err := h.svc.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if course == nil {
		response.NotFound(c, "Course not found")
		return
	}
	ctx := view.Context{Audience: view.AudiencePublic, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Course(*course, ctx))
}

func (h *Handler) listAdmin(c *gin.Context) {
	courses, err := h.svc.ListAdmin(c.Query("availability"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeList}
	response.OK(c, h.proj.Courses(courses, ctx))
}

func (h *Handler) getByID(c *gin.Context) {
	course, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if course == nil {
		response.NotFound(c, "Course not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDetail}
	response.OK(c, h.proj.Course(*course, ctx))
}

func (h *Handler) create(c *gin.Context) {
	in := CreateInput{
		Title:       form.String(c, "title"),
		Slug:        form.String(c, "slug"),
		CardBody:    form.String(c, "cardBody"),
		Description: form.String(c, "description"),
		SortOrder:   form.Int(c, "sortOrder", 0),
		IsActive:    form.Bool(c, "isActive", true),
		IsAvailable: form.Bool(c, "isAvailable", true),
	}
	if in.Title == "" {
		response.BadRequest(c, "title is required")
		return
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.store.Save(c.Request.Context(), fh)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		in.ImageURL = url
	}

	course, err := h.svc.Create(&in)
	if err != nil {
		if err == ErrSlugTaken || err == ErrSlugFromTitle {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeCreated}
	response.Created(c, h.proj.Course(*course, ctx), "Course created successfully")
}

func (h *Handler) update(c *gin.Context) {
	in := UpdateInput{
		Title:       form.Opt(c, "title"),
		Slug:        form.Opt(c, "slug"),
		CardBody:    form.Opt(c, "cardBody"),
		Description: form.Opt(c, "description"),
		SortOrder:   form.OptInt(c, "sortOrder"),
		IsActive:    form.OptBool(c, "isActive"),
		IsAvailable: form.OptBool(c, "isAvailable"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.store.Save(c.Request.Context(), fh)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		in.ImageURL = &url
	}

	course, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		if err == ErrSlugTaken || err == ErrSlugFromTitle {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if course == nil {
		response.NotFound(c, "Course not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeUpdated}
	response.OKMsg(c, h.proj.Course(*course, ctx), "Course updated successfully")
}

func (h *Handler) toggleAvailability(c *gin.Context) {
	var body struct {
		IsAvailable *bool `json:"isAvailable"`
	}
	// empty body means "flip"
	_ = c.ShouldBindJSON(&body)

	course, err := h.svc.ToggleAvailability(c.Param("id"), body.IsAvailable)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if course == nil {
		response.NotFound(c, "Course not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeToggled}
	response.OKMsg(c, h.proj.Course(*course, ctx), "Course availability updated")
}

func (h *Handler) delete(c *gin.Context) {
	course, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if course == nil {
		response.NotFound(c, "Course not found")
		return
	}
	ctx := view.Context{Audience: view.AudienceAdmin, Scope: view.ScopeDeleted}
	response.OKMsg(c, h.proj.Course(*course, ctx), "Course deleted successfully")
}
