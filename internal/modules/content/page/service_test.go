package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"about", "about"},
		{"  About Us  ", "about-us"},
		{"Privacy_Policy", "privacy-policy"},
		{"TERMS", "terms"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeKey(tc.in), "input %q", tc.in)
	}
}
