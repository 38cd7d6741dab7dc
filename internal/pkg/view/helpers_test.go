package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteURL(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		base string
		want string
	}{
		{"relative with base", "/uploads/a.png", "https://api.example.com", "https://api.example.com/uploads/a.png"},
		{"absolute passes through", "https://cdn.x/a.png", "https://api.example.com", "https://cdn.x/a.png"},
		{"no base keeps relative", "/a.png", "", "/a.png"},
		{"trailing slash stripped", "/a.png", "https://api.example.com/", "https://api.example.com/a.png"},
		{"missing leading slash added", "uploads/a.png", "https://api.example.com", "https://api.example.com/uploads/a.png"},
		{"empty value unchanged", "", "https://api.example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AbsoluteURL(tc.raw, tc.base))
		})
	}
}

func TestMediaKind(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"/uploads/a.png", "image"},
		{"/uploads/a.JPG", "image"},
		{"/uploads/clip.mp4", "video"},
		{"/uploads/clip.webm", "video"},
		{"/uploads/a.png?v=2", "image"},
		{"/uploads/readme.pdf", "unknown"},
		{"/uploads/noext", "unknown"},
		{"", "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MediaKind(tc.url), "url %q", tc.url)
	}
}

func TestExcerptHardCut(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Excerpt(long)
	assert.Len(t, got, 160)
	assert.False(t, strings.HasSuffix(got, "..."))
}

func TestExcerptStripsHTML(t *testing.T) {
	assert.Equal(t, "hello world", Excerpt("<p>hello <b>world</b></p>"))
}

func TestShortDescriptionPreferenceOrder(t *testing.T) {
	assert.Equal(t, "curated", *ShortDescription("curated", "long", "card"))
	assert.Equal(t, "long", *ShortDescription("", "long", "card"))
	assert.Equal(t, "card", *ShortDescription("", "", "card"))
	assert.Nil(t, ShortDescription("", "", ""))
}

func TestClassifyLink(t *testing.T) {
	none := ClassifyLink("")
	assert.Equal(t, "none", none.Kind)
	assert.Equal(t, "same_tab", none.Target)
	assert.Nil(t, none.URL)

	ext := ClassifyLink("https://example.com")
	assert.Equal(t, "external", ext.Kind)
	assert.Equal(t, "new_tab", ext.Target)

	in := ClassifyLink("example.com")
	assert.Equal(t, "internal", in.Kind)
	assert.Equal(t, "same_tab", in.Target)
}

func TestCanRegisterTruthTable(t *testing.T) {
	assert.True(t, CanRegister(true, true))
	assert.False(t, CanRegister(true, false))
	assert.False(t, CanRegister(false, true))
	assert.False(t, CanRegister(false, false))

	assert.Equal(t, "available", AvailabilityStatus(true))
	assert.Equal(t, "coming_soon", AvailabilityStatus(false))
}
