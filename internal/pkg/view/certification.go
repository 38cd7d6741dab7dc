package view

import "github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"

// CertificationView decorates a certification offering. The card image
// is preferred for the media descriptor, falling back to the hero image.
type CertificationView struct {
	models.CertificationServiceModel
	ShortDescription *string       `json:"shortDescription"`
	Media            *Media        `json:"media,omitempty"`
	InnerMedia       *Media        `json:"innerMedia,omitempty"`
	Content          CourseContent `json:"content"`
	UI               ServiceUI     `json:"ui"`
	Actions          []Action      `json:"actions"`
	AdminUI          *AdminUI      `json:"adminUi,omitempty"`
	DeletionMeta     *DeletionMeta `json:"deletionMeta,omitempty"`
}

func (p *Projector) Certification(m models.CertificationServiceModel, ctx Context) CertificationView {
	cardMedia := p.media(m.CardImageURL, m.Title)
	if cardMedia == nil {
		cardMedia = p.media(m.HeroImageURL, m.Title)
	}
	// the curated shortDescription passes through untouched; only a
	// value derived from the long description gets excerpted
	short := m.ShortDescription
	if short == "" {
		short = Excerpt(m.Description)
	}
	var shortPtr *string
	if short != "" {
		shortPtr = &short
	}
	v := CertificationView{
		CertificationServiceModel: m,
		ShortDescription:          shortPtr,
		Media:                     cardMedia,
		InnerMedia:                p.media(m.InnerImageURL, m.Title),
		Content:                   CourseContent{Sections: []ContentSection{}},
		UI:                        ServiceUI{Order: m.SortOrder},
	}
	if m.Description != "" {
		v.Content.Sections = append(v.Content.Sections, ContentSection{
			Key:   "overview",
			Title: "Overview",
			Body:  strPtr(m.Description),
		})
	}
	if m.HeroSubtitle != "" {
		v.Content.Sections = append(v.Content.Sections, ContentSection{
			Key:   "hero",
			Title: "Hero",
			Body:  strPtr(m.HeroSubtitle),
		})
	}

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &AdminUI{CanEdit: true, CanDelete: true}
		v.Actions = adminActions("/admin/certification/"+m.ID, "/admin/certification", m.ID != "", ctx.Scope)
		if ctx.Scope == ScopeDeleted {
			v.DeletionMeta = newDeletionMeta()
		}
		return v
	}

	v.Actions = []Action{action("view", "View", "/certification/"+m.Slug, m.Slug != "")}
	return v
}

func (p *Projector) Certifications(ms []models.CertificationServiceModel, ctx Context) []CertificationView {
	out := make([]CertificationView, len(ms))
	for i, m := range ms {
		out[i] = p.Certification(m, ctx)
	}
	return out
}
