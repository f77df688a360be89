package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"script tags removed", "<script>alert(1)</script>hi", "alert(1)hi"},
		{"nested tags removed", "<div><b>bold</b></div>", "bold"},
		{"self closing tag removed", "before<br/>after", "beforeafter"},
		{"unclosed angle bracket kept", "1 < 2", "1 < 2"},
		{"empty tag removed", "a<>b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkup(tt.input))
		})
	}
}

func TestCleanText(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		clean, err := CleanText("  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", clean)
	})

	t.Run("strips markup", func(t *testing.T) {
		clean, err := CleanText("<b>bold</b> move")
		require.NoError(t, err)
		assert.Equal(t, "bold move", clean)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := CleanText("   ")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("markup-only rejected", func(t *testing.T) {
		// Stripping happens before the length check, so tag-only input
		// cannot sneak past as non-empty
		_, err := CleanText("<script></script>")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("at limit accepted", func(t *testing.T) {
		clean, err := CleanText(strings.Repeat("a", 2000))
		require.NoError(t, err)
		assert.Len(t, clean, 2000)
	})

	t.Run("over limit rejected", func(t *testing.T) {
		_, err := CleanText(strings.Repeat("a", 2001))
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("bounds count characters not bytes", func(t *testing.T) {
		// 1500 Cyrillic characters are 3000 bytes and well within the limit
		clean, err := CleanText(strings.Repeat("п", 1500))
		require.NoError(t, err)
		assert.Equal(t, 1500, len([]rune(clean)))

		_, err = CleanText(strings.Repeat("п", 2000))
		require.NoError(t, err)

		_, err = CleanText(strings.Repeat("п", 2001))
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestCleanGuestName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		clean, err := CleanGuestName(" visitor ")
		require.NoError(t, err)
		assert.Equal(t, "visitor", clean)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := CleanGuestName("")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("over limit rejected", func(t *testing.T) {
		_, err := CleanGuestName(strings.Repeat("x", 51))
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("markup stripped from name", func(t *testing.T) {
		clean, err := CleanGuestName("<i>sly</i>")
		require.NoError(t, err)
		assert.Equal(t, "sly", clean)
	})

	t.Run("bounds count characters not bytes", func(t *testing.T) {
		clean, err := CleanGuestName(strings.Repeat("ё", 30))
		require.NoError(t, err)
		assert.Equal(t, 30, len([]rune(clean)))

		_, err = CleanGuestName(strings.Repeat("ё", 50))
		require.NoError(t, err)

		_, err = CleanGuestName(strings.Repeat("ё", 51))
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}
