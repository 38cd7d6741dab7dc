package view

import (
	"strings"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
)

type HeroSlideUI struct {
	Priority    int  `json:"priority"`
	IsClickable bool `json:"isClickable"`
}

// HeroSlideView decorates a slide with its media descriptor and CTA.
type HeroSlideView struct {
	models.HeroSlideModel
	Media        *Media        `json:"media,omitempty"`
	CTA          CTA           `json:"cta"`
	UI           HeroSlideUI   `json:"ui"`
	Actions      []Action      `json:"actions,omitempty"`
	AdminUI      *AdminUI      `json:"adminUi,omitempty"`
	DeletionMeta *DeletionMeta `json:"deletionMeta,omitempty"`
}

func (p *Projector) HeroSlide(m models.HeroSlideModel, ctx Context) HeroSlideView {
	link := ClassifyLink(m.ButtonLink)
	cta := CTA{Kind: link.Kind, Target: link.Target, URL: link.URL}
	if label := strings.TrimSpace(m.ButtonText); label != "" {
		cta.Label = strPtr(label)
	}
	v := HeroSlideView{
		HeroSlideModel: m,
		Media:          p.media(m.MediaURL, m.Title),
		CTA:            cta,
		UI: HeroSlideUI{
			Priority:    m.Order,
			IsClickable: link.Kind != "none",
		},
	}

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &AdminUI{CanEdit: true, CanDelete: true}
		v.Actions = adminActions("/admin/hero-slides/"+m.ID, "/admin/hero-slides", m.ID != "", ctx.Scope)
		if ctx.Scope == ScopeDeleted {
			v.DeletionMeta = newDeletionMeta()
		}
	}
	return v
}

func (p *Projector) HeroSlides(ms []models.HeroSlideModel, ctx Context) []HeroSlideView {
	out := make([]HeroSlideView, len(ms))
	for i, m := range ms {
		out[i] = p.HeroSlide(m, ctx)
	}
	return out
}
