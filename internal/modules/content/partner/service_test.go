package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLink(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://example.com", "https://example.com"},
		{"http://example.com/path", "http://example.com/path"},
		{"example.com", "https://example.com"},
		{"www.example.com/team", "https://www.example.com/team"},
	}
	for _, tc := range cases {
		got, err := NormalizeLink(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeLinkRejectsGarbage(t *testing.T) {
	for _, in := range []string{"https://", "exa mple.com"} {
		_, err := NormalizeLink(in)
		assert.ErrorIs(t, err, ErrInvalidLink, "input %q", in)
	}
}
