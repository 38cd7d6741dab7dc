package view

import (
	"time"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
)

type CourseContent struct {
	Summary  *string          `json:"summary"`
	Sections []ContentSection `json:"sections"`
}

type CourseAdminUI struct {
	CanEdit               bool `json:"canEdit"`
	CanDelete             bool `json:"canDelete"`
	CanToggleAvailability bool `json:"canToggleAvailability"`
}

// ToggleMeta decorates availability-toggle responses. ToggledAt is
// advisory only.
type ToggleMeta struct {
	IsAvailable bool   `json:"isAvailable"`
	ToggledAt   string `json:"toggledAt"`
}

// CourseView is the enriched course shape served on every read path.
type CourseView struct {
	models.CourseModel
	ShortDescription   *string        `json:"shortDescription"`
	AvailabilityStatus string         `json:"availabilityStatus"`
	CanRegister        bool           `json:"canRegister"`
	Media              *Media         `json:"media,omitempty"`
	Content            CourseContent  `json:"content"`
	Actions            []Action       `json:"actions"`
	AdminUI            *CourseAdminUI `json:"adminUi,omitempty"`
	ToggleMeta         *ToggleMeta    `json:"toggleMeta,omitempty"`
	DeletionMeta       *DeletionMeta  `json:"deletionMeta,omitempty"`
}

func (p *Projector) Course(m models.CourseModel, ctx Context) CourseView {
	v := CourseView{
		CourseModel:        m,
		ShortDescription:   ShortDescription(m.Description, m.CardBody),
		AvailabilityStatus: AvailabilityStatus(m.IsAvailable),
		CanRegister:        CanRegister(m.IsActive, m.IsAvailable),
		Media:              p.media(m.ImageURL, m.Title),
		Content:            CourseContent{Sections: []ContentSection{}},
	}
	if s := Excerpt(m.CardBody); s != "" {
		v.Content.Summary = &s
	}
	if m.Description != "" {
		v.Content.Sections = append(v.Content.Sections, ContentSection{
			Key:   "overview",
			Title: "Overview",
			Body:  strPtr(m.Description),
		})
	}

	hasID := m.ID != ""
	hasSlug := m.Slug != ""

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &CourseAdminUI{CanEdit: true, CanDelete: true, CanToggleAvailability: true}
		base := "/admin/courses/" + m.ID
		switch ctx.Scope {
		case ScopeDeleted:
			v.DeletionMeta = &DeletionMeta{DeletedAt: time.Now().UTC().Format(time.RFC3339)}
			v.Actions = []Action{action("back_to_list", "Back", "/admin/courses", true)}
		case ScopeCreated:
			v.Actions = []Action{
				action("view", "View", base, hasID),
				action("edit", "Edit", base, hasID),
				action("back_to_list", "Back", "/admin/courses", true),
			}
		case ScopeUpdated, ScopeToggled:
			if ctx.Scope == ScopeToggled {
				v.ToggleMeta = &ToggleMeta{
					IsAvailable: m.IsAvailable,
					ToggledAt:   time.Now().UTC().Format(time.RFC3339),
				}
			}
			v.Actions = []Action{
				action("view", "View", base, hasID),
				action("back_to_list", "Back", "/admin/courses", true),
			}
		default:
			v.Actions = []Action{
				action("view", "View", base, hasID),
				action("edit", "Edit", base, hasID),
				action("toggle_availability", "Toggle availability", base+"/availability", hasID),
				action("delete", "Delete", base, hasID),
			}
		}
		return v
	}

	v.Actions = []Action{
		action("view", "View", "/courses/"+m.Slug, hasSlug),
		action("register", "Register", "/courses/"+m.Slug+"/register", hasSlug && v.CanRegister),
	}
	return v
}

func (p *Projector) Courses(ms []models.CourseModel, ctx Context) []CourseView {
	out := make([]CourseView, len(ms))
	for i, m := range ms {
		out[i] = p.Course(m, ctx)
	}
	return out
}
