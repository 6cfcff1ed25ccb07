package pagedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	t.Run("should parse bootstrap state embedded in watch page HTML", func(t *testing.T) {
		// Arrange
		html := `<html><body><script>var ytInitialData = {"contents":{"title":"example"}};</script></body></html>`

		// Act
		state, err := Locate(html)

		// Assert
		require.NoError(t, err)
		contents, ok := state["contents"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "example", contents["title"])
	})

	t.Run("should fail with page data not found when marker is absent", func(t *testing.T) {
		// Arrange
		html := `<html><body><p>Sign in to confirm your age</p></body></html>`

		// Act
		state, err := Locate(html)

		// Assert
		assert.Nil(t, state)
		assert.ErrorIs(t, err, ErrPageDataNotFound)
	})

	t.Run("should fail with malformed page data when JSON does not parse", func(t *testing.T) {
		// Arrange
		html := `<script>var ytInitialData = {"contents":};</script>`

		// Act
		state, err := Locate(html)

		// Assert
		assert.Nil(t, state)
		assert.ErrorIs(t, err, ErrMalformedPageData)
		assert.NotErrorIs(t, err, ErrPageDataNotFound)
	})

	t.Run("should not over-capture into subsequent script content", func(t *testing.T) {
		// Arrange - a second script tag follows the bootstrap state
		html := `<script>var ytInitialData = {"a":1};</script><script>var other = {"b":2};</script>`

		// Act
		state, err := Locate(html)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, float64(1), state["a"])
		assert.NotContains(t, state, "b")
	})

	t.Run("should tolerate whitespace around the assignment", func(t *testing.T) {
		// Arrange
		html := "<script>var ytInitialData  =  {\"a\":true};\n</script>"

		// Act
		state, err := Locate(html)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, true, state["a"])
	})

	t.Run("should handle empty input", func(t *testing.T) {
		// Act
		_, err := Locate("")

		// Assert
		assert.ErrorIs(t, err, ErrPageDataNotFound)
	})
}
