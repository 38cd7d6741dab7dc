package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"new", "read", "archived"} {
		assert.True(t, ValidStatus(s), "status %q", s)
	}
	for _, s := range []string{"", "open", "NEW", "deleted"} {
		assert.False(t, ValidStatus(s), "status %q", s)
	}
}
