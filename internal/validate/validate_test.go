package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/humanspan/internal/errors"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
		wantErr  bool
	}{
		{"plain", "2 to 4 days", 100, "2 to 4 days", false},
		{"trims", "  6-months \n", 100, "6-months", false},
		{"tab_becomes_space", "1\tyear", 100, "1 year", false},
		{"null_bytes_removed", "2\x00 days", 100, "2 days", false},
		{"invalid_utf8_dropped", "2 \xffdays", 100, "2 days", false},
		{"default_limit", "3 weeks", 0, "3 weeks", false},
		{"too_long", strings.Repeat("a", 11), 10, "", true},
		{"limit_after_trim", "  " + strings.Repeat("a", 10) + "  ", 10, strings.Repeat("a", 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Input(tt.input, tt.max)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsUserError(err))
				assert.ErrorIs(t, err, errors.ErrInputTooLarge)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNonEmpty(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, NonEmpty("text", "2 days"))
	})

	t.Run("whitespace_only", func(t *testing.T) {
		err := NonEmpty("text", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "text cannot be empty")
		assert.True(t, errors.IsUserError(err))
		assert.ErrorIs(t, err, errors.ErrNoInput)
		assert.Equal(t, "Provide a value for text", errors.GetSuggestion(err))
	})
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 10))
	assert.Equal(t, "abc...", Preview("abcdef", 3))
	assert.Equal(t, "éé...", Preview("ééé", 2))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "2 days", SanitizeInput("\r\n2 days\r\n"))
	assert.Equal(t, "1 year  6 months", SanitizeInput("1 year\r\n6 months"))
	assert.Equal(t, "", SanitizeInput("\x00\x01"))
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment(""))
	assert.True(t, IsComment("   "))
	assert.True(t, IsComment("# header"))
	assert.True(t, IsComment("  # indented"))
	assert.False(t, IsComment("2 days # estimate"))
}
