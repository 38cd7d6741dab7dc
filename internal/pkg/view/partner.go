package view

import "github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"

type PartnerUI struct {
	Order int `json:"order"`
}

// PartnerView decorates a partner logo with its link classification.
type PartnerView struct {
	models.PartnerModel
	Media        *Media        `json:"media,omitempty"`
	LinkMeta     LinkMeta      `json:"linkMeta"`
	UI           PartnerUI     `json:"ui"`
	Actions      []Action      `json:"actions"`
	AdminUI      *AdminUI      `json:"adminUi,omitempty"`
	DeletionMeta *DeletionMeta `json:"deletionMeta,omitempty"`
}

func (p *Projector) Partner(m models.PartnerModel, ctx Context) PartnerView {
	v := PartnerView{
		PartnerModel: m,
		Media:        p.media(m.LogoURL, m.Name),
		LinkMeta:     ClassifyLink(m.Link),
		UI:           PartnerUI{Order: m.SortOrder},
	}

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &AdminUI{CanEdit: true, CanDelete: true}
		v.Actions = adminActions("/admin/partners/"+m.ID, "/admin/partners", m.ID != "", ctx.Scope)
		if ctx.Scope == ScopeDeleted {
			v.DeletionMeta = newDeletionMeta()
		}
		return v
	}

	v.Actions = []Action{action("open", "Open", m.Link, m.Link != "")}
	return v
}

func (p *Projector) Partners(ms []models.PartnerModel, ctx Context) []PartnerView {
	out := make([]PartnerView, len(ms))
	for i, m := range ms {
		out[i] = p.Partner(m, ctx)
	}
	return out
}
