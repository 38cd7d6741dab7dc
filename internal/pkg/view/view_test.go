package view

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
)

func TestCourseProjectionPreservesOriginalFields(t *testing.T) {
	p := New("https://api.example.com")
	m := models.CourseModel{
		Base:        models.Base{ID: "c1"},
		Title:       "ACLS",
		Slug:        "acls",
		CardBody:    "Advanced life support",
		Description: "Full course description",
		ImageURL:    "/uploads/acls.png",
		SortOrder:   3,
		IsActive:    true,
		IsAvailable: true,
	}

	raw, err := json.Marshal(p.Course(m, Context{Audience: AudiencePublic, Scope: ScopeDetail}))
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "c1", got["id"])
	assert.Equal(t, "ACLS", got["title"])
	assert.Equal(t, "acls", got["slug"])
	assert.Equal(t, "Advanced life support", got["cardBody"])
	assert.Equal(t, "Full course description", got["description"])
	assert.Equal(t, "/uploads/acls.png", got["imageUrl"])
	assert.Equal(t, float64(3), got["sortOrder"])
}

func TestCourseShortDescriptionPrefersDescription(t *testing.T) {
	p := New("")

	both := p.Course(models.CourseModel{
		CardBody:    "Card copy",
		Description: "The long description",
	}, Context{Audience: AudiencePublic, Scope: ScopeList})
	require.NotNil(t, both.ShortDescription)
	assert.Equal(t, "The long description", *both.ShortDescription)

	cardOnly := p.Course(models.CourseModel{
		CardBody: "Card copy",
	}, Context{Audience: AudiencePublic, Scope: ScopeList})
	require.NotNil(t, cardOnly.ShortDescription)
	assert.Equal(t, "Card copy", *cardOnly.ShortDescription)
}

func TestCoursePublicProjection(t *testing.T) {
	p := New("https://api.example.com")
	m := models.CourseModel{
		Base:        models.Base{ID: "c1"},
		Title:       "ACLS",
		Slug:        "acls",
		CardBody:    "Advanced life support",
		ImageURL:    "/uploads/acls.png",
		IsActive:    true,
		IsAvailable: false,
	}

	v := p.Course(m, Context{Audience: AudiencePublic, Scope: ScopeList})

	assert.Equal(t, "coming_soon", v.AvailabilityStatus)
	assert.False(t, v.CanRegister)
	require.NotNil(t, v.Media)
	assert.Equal(t, "https://api.example.com/uploads/acls.png", v.Media.URL)
	assert.Equal(t, "image", v.Media.Kind)
	assert.Nil(t, v.AdminUI)

	require.Len(t, v.Actions, 2)
	assert.Equal(t, "view", v.Actions[0].Type)
	assert.True(t, v.Actions[0].Enabled)
	assert.Equal(t, "register", v.Actions[1].Type)
	assert.False(t, v.Actions[1].Enabled, "coming_soon course must not be registrable")
	assert.Nil(t, v.Actions[1].URL)
}

func TestCourseAdminProjection(t *testing.T) {
	p := New("")
	m := models.CourseModel{Base: models.Base{ID: "c1"}, Title: "ACLS", Slug: "acls", IsActive: true, IsAvailable: true}

	v := p.Course(m, Context{Audience: AudienceAdmin, Scope: ScopeList})
	require.NotNil(t, v.AdminUI)
	assert.True(t, v.AdminUI.CanToggleAvailability)
	types := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		types = append(types, a.Type)
	}
	assert.Equal(t, []string{"view", "edit", "toggle_availability", "delete"}, types)

	toggled := p.Course(m, Context{Audience: AudienceAdmin, Scope: ScopeToggled})
	require.NotNil(t, toggled.ToggleMeta)
	assert.True(t, toggled.ToggleMeta.IsAvailable)
}

func TestCourseActionsDisabledWithoutIdentifiers(t *testing.T) {
	p := New("")
	v := p.Course(models.CourseModel{}, Context{Audience: AudiencePublic, Scope: ScopeList})
	for _, a := range v.Actions {
		assert.False(t, a.Enabled, "action %s must be disabled without a slug", a.Type)
		assert.Nil(t, a.URL)
	}
}

func TestHeroSlideProjection(t *testing.T) {
	p := New("https://api.example.com")
	m := models.HeroSlideModel{
		Base:       models.Base{ID: "h1"},
		Type:       models.HeroSlideVideo,
		Title:      "Welcome",
		MediaURL:   "/uploads/intro.mp4",
		ButtonText: "Learn more",
		ButtonLink: "https://example.com/about",
		Order:      2,
	}

	v := p.HeroSlide(m, Context{Audience: AudiencePublic, Scope: ScopeList})
	require.NotNil(t, v.Media)
	assert.Equal(t, "video", v.Media.Kind)
	assert.Equal(t, "https://api.example.com/uploads/intro.mp4", v.Media.URL)
	assert.Equal(t, 2, v.UI.Priority)
	assert.True(t, v.UI.IsClickable)
	require.NotNil(t, v.CTA.Label)
	assert.Equal(t, "Learn more", *v.CTA.Label)
	assert.Equal(t, "external", v.CTA.Kind)
	assert.Equal(t, "new_tab", v.CTA.Target)
}

func TestHeroSlideWithoutMediaOrButton(t *testing.T) {
	p := New("")
	v := p.HeroSlide(models.HeroSlideModel{Title: "Bare"}, Context{Audience: AudiencePublic, Scope: ScopeList})
	assert.Nil(t, v.Media)
	assert.Nil(t, v.CTA.Label)
	assert.Equal(t, "none", v.CTA.Kind)
	assert.False(t, v.UI.IsClickable)
}

func TestCertificationMediaPreference(t *testing.T) {
	p := New("")
	withCard := p.Certification(models.CertificationServiceModel{
		CardImageURL: "/uploads/card.png",
		HeroImageURL: "/uploads/hero.png",
	}, Context{Audience: AudiencePublic, Scope: ScopeList})
	require.NotNil(t, withCard.Media)
	assert.Equal(t, "/uploads/card.png", withCard.Media.URL)

	heroOnly := p.Certification(models.CertificationServiceModel{
		HeroImageURL: "/uploads/hero.png",
	}, Context{Audience: AudiencePublic, Scope: ScopeList})
	require.NotNil(t, heroOnly.Media)
	assert.Equal(t, "/uploads/hero.png", heroOnly.Media.URL)
}

func TestCertificationStoredShortDescriptionUntouched(t *testing.T) {
	p := New("")
	long := strings.Repeat("Hands-on skills stations. ", 10) // well past the excerpt cut

	v := p.Certification(models.CertificationServiceModel{
		Title:            "BLS",
		ShortDescription: long,
		Description:      "Full description",
	}, Context{Audience: AudiencePublic, Scope: ScopeDetail})

	require.NotNil(t, v.ShortDescription)
	assert.Equal(t, long, *v.ShortDescription)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, long, got["shortDescription"])
}

func TestCertificationShortDescriptionDerivedFromDescription(t *testing.T) {
	p := New("")
	long := strings.Repeat("x", 200)

	v := p.Certification(models.CertificationServiceModel{
		Title:       "BLS",
		Description: long,
	}, Context{Audience: AudiencePublic, Scope: ScopeDetail})

	require.NotNil(t, v.ShortDescription)
	assert.Equal(t, Excerpt(long), *v.ShortDescription)
	assert.Len(t, *v.ShortDescription, 160)
}

func TestPartnerProjection(t *testing.T) {
	p := New("https://api.example.com")
	v := p.Partner(models.PartnerModel{
		Base:      models.Base{ID: "p1"},
		Link:      "https://partner.example.com",
		LogoURL:   "/uploads/logo.webp",
		SortOrder: 5,
	}, Context{Audience: AudiencePublic, Scope: ScopeList})

	assert.Equal(t, "external", v.LinkMeta.Kind)
	assert.Equal(t, 5, v.UI.Order)
	require.NotNil(t, v.Media)
	assert.Equal(t, "https://api.example.com/uploads/logo.webp", v.Media.URL)
	require.Len(t, v.Actions, 1)
	assert.Equal(t, "open", v.Actions[0].Type)
	assert.True(t, v.Actions[0].Enabled)
}

func TestRegistrationProjection(t *testing.T) {
	p := New("")
	m := models.CourseRegistrationModel{
		Base:     models.Base{ID: "r1"},
		CourseID: "c1",
		UserID:   "u1",
		Status:   models.RegistrationPaid,
		User:     &models.UserModel{Base: models.Base{ID: "u1"}, Name: "Jo Doe", Email: "jo@example.com"},
		Course:   &models.CourseModel{Base: models.Base{ID: "c1"}, Title: "ACLS", Slug: "acls"},
	}

	v := p.Registration(m, Context{Audience: AudienceAdmin, Scope: ScopeList})
	assert.Equal(t, "Paid", v.RegistrationMeta.StatusLabel)
	assert.True(t, v.RegistrationMeta.IsApproved)
	assert.False(t, v.RegistrationMeta.IsPending)
	require.NotNil(t, v.UserSnapshot)
	assert.Equal(t, "jo@example.com", v.UserSnapshot.Email)
	require.NotNil(t, v.CourseSnapshot)
	assert.Equal(t, "acls", v.CourseSnapshot.Slug)
	require.NotNil(t, v.AdminUI)
	assert.Equal(t, models.RegistrationStatuses, v.AdminUI.AllowedStatuses)
}

func TestRegistrationWithoutPreloadedRelations(t *testing.T) {
	p := New("")
	v := p.Registration(models.CourseRegistrationModel{
		Base:   models.Base{ID: "r1"},
		Status: models.RegistrationPending,
	}, Context{Audience: AudiencePublic, Scope: ScopeList})

	assert.Nil(t, v.UserSnapshot)
	assert.Nil(t, v.CourseSnapshot)
	assert.True(t, v.RegistrationMeta.IsPending)
	require.Len(t, v.Actions, 1)
	assert.False(t, v.Actions[0].Enabled)
}

func TestListProjectionPreservesOrder(t *testing.T) {
	p := New("")
	ms := []models.CourseModel{
		{Base: models.Base{ID: "a"}, Title: "A", Slug: "a"},
		{Base: models.Base{ID: "b"}, Title: "B", Slug: "b"},
		{Base: models.Base{ID: "c"}, Title: "C", Slug: "c"},
	}
	vs := p.Courses(ms, Context{Audience: AudiencePublic, Scope: ScopeList})
	require.Len(t, vs, 3)
	for i := range ms {
		assert.Equal(t, ms[i].ID, vs[i].ID)
	}
}

func TestPageProjection(t *testing.T) {
	p := New("").WithMarkdown(func(s string) (string, error) {
		return "<h1>About</h1>", nil
	})
	v := p.Page(models.PageContentModel{
		Base:    models.Base{ID: "pg1"},
		Key:     "about",
		Title:   "About Us",
		Content: "# About\n\nWe teach life support courses.",
	}, Context{Audience: AudiencePublic, Scope: ScopeDetail})

	assert.Equal(t, "markdown", v.ContentMeta.ContentType)
	assert.Equal(t, 1, v.ContentMeta.EstimatedReadTimeMinutes)
	require.NotNil(t, v.RenderedHTML)
	assert.Equal(t, "<h1>About</h1>", *v.RenderedHTML)
	assert.True(t, v.UI.ShowTitle)
	assert.Equal(t, "page", v.UI.Layout)
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "html", DetectContentType("<p>hi</p>"))
	assert.Equal(t, "markdown", DetectContentType("# Title"))
	assert.Equal(t, "markdown", DetectContentType("some **bold** text"))
	assert.Equal(t, "text", DetectContentType("plain words only"))
}
