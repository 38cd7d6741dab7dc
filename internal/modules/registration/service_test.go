package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "rejected"} {
		assert.True(t, ValidStatus(s), "status %q", s)
	}
	for _, s := range []string{"", "approved", "PAID", "done"} {
		assert.False(t, ValidStatus(s), "status %q", s)
	}
}
