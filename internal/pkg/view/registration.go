package view

import (
	"strings"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
)

type RegistrationMeta struct {
	StatusLabel string `json:"statusLabel"`
	IsPending   bool   `json:"isPending"`
	IsApproved  bool   `json:"isApproved"`
	IsRejected  bool   `json:"isRejected"`
}

// UserSnapshot is the registering user as already loaded on the
// registration row. Projection never triggers an extra lookup.
type UserSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CourseSnapshot struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type RegistrationAdminUI struct {
	CanUpdateStatus bool     `json:"canUpdateStatus"`
	AllowedStatuses []string `json:"allowedStatuses"`
}

// RegistrationView decorates a course registration with status flags
// and snapshots of its preloaded relations.
type RegistrationView struct {
	models.CourseRegistrationModel
	RegistrationMeta RegistrationMeta     `json:"registrationMeta"`
	UserSnapshot     *UserSnapshot        `json:"userSnapshot,omitempty"`
	CourseSnapshot   *CourseSnapshot      `json:"courseSnapshot,omitempty"`
	AdminUI          *RegistrationAdminUI `json:"adminUi,omitempty"`
	Actions          []Action             `json:"actions"`
}

func (p *Projector) Registration(m models.CourseRegistrationModel, ctx Context) RegistrationView {
	v := RegistrationView{
		CourseRegistrationModel: m,
		RegistrationMeta: RegistrationMeta{
			StatusLabel: statusLabel(m.Status),
			IsPending:   m.Status == models.RegistrationPending,
			IsApproved:  m.Status == models.RegistrationPaid,
			IsRejected:  m.Status == models.RegistrationRejected,
		},
	}
	if m.User != nil {
		v.UserSnapshot = &UserSnapshot{ID: m.User.ID, Name: m.User.Name, Email: m.User.Email}
	}
	if m.Course != nil {
		v.CourseSnapshot = &CourseSnapshot{ID: m.Course.ID, Title: m.Course.Title, Slug: m.Course.Slug}
	}

	if ctx.Audience == AudienceAdmin {
		v.AdminUI = &RegistrationAdminUI{
			CanUpdateStatus: true,
			AllowedStatuses: models.RegistrationStatuses,
		}
		v.Actions = []Action{
			action("update_status", "Update status", "/admin/course-registrations/"+m.ID+"/status", m.ID != ""),
		}
		return v
	}

	courseSlug := ""
	if m.Course != nil {
		courseSlug = m.Course.Slug
	}
	v.Actions = []Action{
		action("view_course", "View course", "/courses/"+courseSlug, courseSlug != ""),
	}
	return v
}

func (p *Projector) Registrations(ms []models.CourseRegistrationModel, ctx Context) []RegistrationView {
	out := make([]RegistrationView, len(ms))
	for i, m := range ms {
		out[i] = p.Registration(m, ctx)
	}
	return out
}

func statusLabel(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:]
}
