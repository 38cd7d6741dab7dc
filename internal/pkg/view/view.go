// Package view builds client-facing projections of persisted records:
// absolute media URLs, computed short descriptions, link classification,
// availability flags and action affordances. Projections only ever add
// fields on top of the stored entity, they never mutate it.
package view

import "time"

// Audience selects which affordance set a projection carries.
type Audience string

const (
	AudiencePublic Audience = "public"
	AudienceAdmin  Audience = "admin"
)

// Scope narrows the projection to the response it decorates.
type Scope string

const (
	ScopeList    Scope = "list"
	ScopeDetail  Scope = "detail"
	ScopeCreated Scope = "created"
	ScopeUpdated Scope = "updated"
	ScopeToggled Scope = "toggled"
	ScopeDeleted Scope = "deleted"
)

// Context describes who is looking at the entity and in which response.
type Context struct {
	Audience Audience
	Scope    Scope
}

// Projector derives read-only view models. BaseURL (no trailing slash)
// is used to absolutize stored relative media paths; RenderMarkdown is
// optional and only consulted for markdown page content.
type Projector struct {
	baseURL        string
	renderMarkdown func(string) (string, error)
}

// New creates a Projector. baseURL may be empty, in which case stored
// relative URLs are passed through unchanged.
func New(baseURL string) *Projector {
	return &Projector{baseURL: trimBase(baseURL)}
}

// WithMarkdown installs a markdown renderer used for page projections.
func (p *Projector) WithMarkdown(render func(string) (string, error)) *Projector {
	p.renderMarkdown = render
	return p
}

// Media describes a renderable asset.
type Media struct {
	URL  string `json:"url"`
	Alt  string `json:"alt"`
	Kind string `json:"kind"`
}

// CTA is a call-to-action derived from a button label and link.
type CTA struct {
	Label  *string `json:"label"`
	URL    *string `json:"url"`
	Kind   string  `json:"kind"`
	Target string  `json:"target"`
}

// LinkMeta classifies a stored link for client navigation.
type LinkMeta struct {
	Kind   string  `json:"kind"`
	Target string  `json:"target"`
	URL    *string `json:"url"`
}

// Action is a single affordance offered to the client. Disabled actions
// are still included so clients can render a stable action set.
type Action struct {
	Type    string  `json:"type"`
	Label   string  `json:"label"`
	URL     *string `json:"url"`
	Enabled bool    `json:"enabled"`
}

// DeletionMeta decorates delete responses.
type DeletionMeta struct {
	DeletedAt string `json:"deletedAt"`
}

// ContentSection is a named slice of long-form content.
type ContentSection struct {
	Key   string  `json:"key"`
	Title string  `json:"title"`
	Body  *string `json:"body"`
}

// adminActions is the default admin affordance set for CRUD resources,
// narrowed by scope so write responses carry a back-to-list action.
func adminActions(base, listURL string, hasID bool, scope Scope) []Action {
	switch scope {
	case ScopeCreated:
		return []Action{
			action("view", "View", base, hasID),
			action("edit", "Edit", base, hasID),
			action("back_to_list", "Back", listURL, true),
		}
	case ScopeUpdated, ScopeToggled:
		return []Action{
			action("view", "View", base, hasID),
			action("back_to_list", "Back", listURL, true),
		}
	case ScopeDeleted:
		return []Action{action("back_to_list", "Back", listURL, true)}
	default:
		return []Action{
			action("view", "View", base, hasID),
			action("edit", "Edit", base, hasID),
			action("delete", "Delete", base, hasID),
		}
	}
}

func newDeletionMeta() *DeletionMeta {
	return &DeletionMeta{DeletedAt: time.Now().UTC().Format(time.RFC3339)}
}

func action(typ, label, url string, enabled bool) Action {
	a := Action{Type: typ, Label: label, Enabled: enabled}
	if enabled && url != "" {
		a.URL = &url
	}
	return a
}

func strPtr(s string) *string {
	return &s
}
