package slug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Heart & Stroke 101!", "heart-stroke-101"},
		{"underscores collapse", "foo_bar__baz", "foo-bar-baz"},
		{"mixed separators", "a - b _ c", "a-b-c"},
		{"leading trailing trimmed", "  --Go!--  ", "go"},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
		{"already a slug", "heart-stroke-101", "heart-stroke-101"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{"Hello World", "Heart & Stroke 101!", "foo_bar", "ACLS 2024"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify(%q) not idempotent", in)
	}
}

func TestAllocateUniqueBaseFree(t *testing.T) {
	var calls []string
	exists := func(s, excludeID string) (bool, error) {
		calls = append(calls, s)
		return false, nil
	}

	got, err := AllocateUnique("acls", exists, "")
	require.NoError(t, err)
	assert.Equal(t, "acls", got)
	assert.Equal(t, []string{"acls"}, calls)
}

func TestAllocateUniqueProbesSuffixes(t *testing.T) {
	taken := map[string]bool{"acls": true, "acls-1": true}
	var calls []string
	exists := func(s, excludeID string) (bool, error) {
		calls = append(calls, s)
		return taken[s], nil
	}

	got, err := AllocateUnique("acls", exists, "")
	require.NoError(t, err)
	assert.Equal(t, "acls-2", got)
	assert.Equal(t, []string{"acls", "acls-1", "acls-2"}, calls)
}

func TestAllocateUniquePassesExcludeID(t *testing.T) {
	exists := func(s, excludeID string) (bool, error) {
		assert.Equal(t, "row-42", excludeID)
		return false, nil
	}
	got, err := AllocateUnique("acls", exists, "row-42")
	require.NoError(t, err)
	assert.Equal(t, "acls", got)
}

func TestAllocateUniqueGivesUp(t *testing.T) {
	calls := 0
	exists := func(s, excludeID string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := AllocateUnique("acls", exists, "")
	require.Error(t, err)
	assert.Equal(t, 1000, calls)
	assert.Contains(t, err.Error(), "1000 attempts")
}

func TestAllocateUniquePropagatesError(t *testing.T) {
	boom := errors.New("db down")
	exists := func(s, excludeID string) (bool, error) { return false, boom }

	_, err := AllocateUnique("acls", exists, "")
	assert.ErrorIs(t, err, boom)
}
