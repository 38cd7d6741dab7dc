package view

import "github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"

// AdminUI is the shared admin affordance block for plain CRUD resources.
type AdminUI struct {
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

type ServiceUI struct {
	Order int `json:"order"`
}

// ServiceView decorates a service with card and detail media.
type ServiceView struct {
	models.ServiceModel
	ShortDescription *string       `json:"shortDescription"`
	Media            *Media        `json:"media,omitempty"`
	InnerMedia       *Media        `json:"innerMedia,omitempty"`
	Content          CourseContent `json:"content"`
	UI               ServiceUI     `json:"ui"`
	Actions          []Action      `json:"actions"`
	AdminUI          *AdminUI      `json:"adminUi,omitempty"`
	DeletionMeta     *DeletionMeta `json:"deletionMeta,omitempty"`
}

func (p *Projector) Service(m models.ServiceModel, ctx Context) ServiceView {
	v := ServiceView{
		ServiceModel:     m,
		ShortDescription: ShortDescription(m.Description),
		Media:            p.media(m.ImageURL, m.Title),
		InnerMedia:       p.media(m.InnerImageURL, m.Title),
		Content:          CourseContent{Sections: []ContentSection{}},
		UI:               ServiceUI{Order: m.SortOrder},
	}
	if m.Description != "" {
		v.Content.Sections = append(v.Content.Sections, ContentSection{
			Key:   "overview",
			Title: "Overview",
			Body:  strPtr(m.Description),
		})
	}

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &AdminUI{CanEdit: true, CanDelete: true}
		v.Actions = adminActions("/admin/services/"+m.ID, "/admin/services", m.ID != "", ctx.Scope)
		if ctx.Scope == ScopeDeleted {
			v.DeletionMeta = newDeletionMeta()
		}
		return v
	}

	v.Actions = []Action{action("view", "View", "/services/"+m.Slug, m.Slug != "")}
	return v
}

func (p *Projector) Services(ms []models.ServiceModel, ctx Context) []ServiceView {
	out := make([]ServiceView, len(ms))
	for i, m := range ms {
		out[i] = p.Service(m, ctx)
	}
	return out
}
