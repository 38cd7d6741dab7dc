package file

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/view"
)

// Handler exposes a generic admin upload endpoint for editor assets.
type Handler struct {
	store *upload.Store
	proj  *view.Projector
}

func NewHandler(store *upload.Store, proj *view.Projector) *Handler {
	return &Handler{store: store, proj: proj}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.upload)
	rg.DELETE("/uploads", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	url, err := h.store.Save(c.Request.Context(), fh)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, gin.H{
		"url":      h.proj.AbsoluteURL(url),
		"path":     url,
		"filename": fh.Filename,
		"mimeType": fh.Header.Get("Content-Type"),
		"size":     fh.Size,
		"kind":     view.MediaKind(url),
	}, "File uploaded successfully")
}

type removeDTO struct {
	Path string `json:"path" binding:"required"`
}

func (h *Handler) remove(c *gin.Context) {
	var dto removeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "path is required")
		return
	}

	h.store.Delete(c.Request.Context(), dto.Path)
	response.OKMsg(c, nil, "File deleted")
}
