package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	html, err := renderTemplate(welcomeTpl, WelcomeData{
		Name:     "Sara",
		SiteURL:  "https://scts.example.com",
		SiteName: "SCTS Institute",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Welcome, Sara!")
	assert.Contains(t, html, "https://scts.example.com")
	assert.Contains(t, html, "SCTS Institute")
}

func TestRenderContactNotifyEscapesInput(t *testing.T) {
	html, err := renderTemplate(contactNotifyTpl, ContactNotifyData{
		Name:    "Eve",
		Email:   "eve@example.com",
		Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderRegistrationStatusOptionalNotes(t *testing.T) {
	withNotes, err := renderTemplate(registrationStatusTpl, RegistrationStatusData{
		Name:        "Omar",
		CourseTitle: "ACLS",
		StatusLabel: "paid",
		Notes:       "See you Monday",
	})
	require.NoError(t, err)
	assert.Contains(t, withNotes, "See you Monday")

	without, err := renderTemplate(registrationStatusTpl, RegistrationStatusData{
		Name:        "Omar",
		CourseTitle: "ACLS",
		StatusLabel: "rejected",
	})
	require.NoError(t, err)
	assert.NotContains(t, without, "See you Monday")
	assert.Contains(t, without, "rejected")
}

func TestDisabledSenderDropsMail(t *testing.T) {
	s := New(Config{Enable: false})
	assert.False(t, s.Enabled())
	assert.NoError(t, s.Send(Message{To: []string{"a@b.c"}, Subject: "x", HTML: "y"}))
}
