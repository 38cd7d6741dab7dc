package view

import (
	"regexp"
	"strings"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
)

const wordsPerMinute = 200

var markdownMarker = regexp.MustCompile(`(?m)^#{1,6}\s|^[-*]\s|\*\*[^*]+\*\*|\[[^\]]+\]\([^)]+\)`)

type ContentMeta struct {
	ContentType              string `json:"contentType"`
	EstimatedReadTimeMinutes int    `json:"estimatedReadTimeMinutes"`
}

type PageUI struct {
	ShowTitle bool   `json:"showTitle"`
	Layout    string `json:"layout"`
}

// PageView decorates a static page with content metadata and, for
// markdown content, a pre-rendered HTML body.
type PageView struct {
	models.PageContentModel
	ContentMeta  ContentMeta   `json:"contentMeta"`
	RenderedHTML *string       `json:"renderedHtml,omitempty"`
	UI           PageUI        `json:"ui"`
	Actions      []Action      `json:"actions"`
	AdminUI      *AdminUI      `json:"adminUi,omitempty"`
	DeletionMeta *DeletionMeta `json:"deletionMeta,omitempty"`
}

func (p *Projector) Page(m models.PageContentModel, ctx Context) PageView {
	contentType := DetectContentType(m.Content)
	v := PageView{
		PageContentModel: m,
		ContentMeta: ContentMeta{
			ContentType:              contentType,
			EstimatedReadTimeMinutes: ReadTimeMinutes(m.Content),
		},
		UI: PageUI{ShowTitle: m.Title != "", Layout: "page"},
	}
	if contentType == "markdown" && p.renderMarkdown != nil {
		if html, err := p.renderMarkdown(m.Content); err == nil {
			v.RenderedHTML = &html
		}
	}

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &AdminUI{CanEdit: true, CanDelete: true}
		v.Actions = adminActions("/admin/pages/"+m.ID, "/admin/pages", m.ID != "", ctx.Scope)
		if ctx.Scope == ScopeDeleted {
			v.DeletionMeta = newDeletionMeta()
		}
		return v
	}

	v.Actions = []Action{action("share", "Share", "/pages/"+m.Key, m.Key != "")}
	return v
}

func (p *Projector) Pages(ms []models.PageContentModel, ctx Context) []PageView {
	out := make([]PageView, len(ms))
	for i, m := range ms {
		out[i] = p.Page(m, ctx)
	}
	return out
}

// DetectContentType sniffs stored page content as html, markdown or
// plain text.
func DetectContentType(content string) string {
	if htmlTag.MatchString(content) {
		return "html"
	}
	if markdownMarker.MatchString(content) {
		return "markdown"
	}
	return "text"
}

// ReadTimeMinutes estimates reading time at 200 words per minute,
// never reporting less than one minute.
func ReadTimeMinutes(content string) int {
	words := len(strings.Fields(htmlTag.ReplaceAllString(content, " ")))
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
