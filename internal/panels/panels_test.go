package panels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateFromJSON builds a bootstrap state map from a JSON literal.
func stateFromJSON(t *testing.T, raw string) map[string]any {
	t.Helper()
	var state map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	return state
}

// transcriptPanel builds a qualifying searchable-transcript panel.
func transcriptPanel(params string) string {
	return `{
		"engagementPanelSectionListRenderer": {
			"targetId": "engagement-panel-searchable-transcript",
			"content": {
				"continuationItemRenderer": {
					"continuationEndpoint": {
						"getTranscriptEndpoint": {"params": "` + params + `"}
					}
				}
			}
		}
	}`
}

func TestFindTranscriptEndpoint(t *testing.T) {
	t.Run("should find descriptor in qualifying panel", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"engagementPanels": [`+transcriptPanel("CgNhc3ISAmVu")+`]}`)

		// Act
		endpoint, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, "CgNhc3ISAmVu", endpoint.Params)
	})

	t.Run("should return not-found when panel collection is absent", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"contents": {}}`)

		// Act
		_, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should return not-found when panel collection is empty", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"engagementPanels": []}`)

		// Act
		_, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should skip panels with a different target identifier", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"engagementPanels": [{
			"engagementPanelSectionListRenderer": {
				"targetId": "engagement-panel-comments-section"
			}
		}]}`)

		// Act
		_, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should skip transcript panel lacking a continuation endpoint", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"engagementPanels": [{
			"engagementPanelSectionListRenderer": {
				"targetId": "engagement-panel-searchable-transcript",
				"content": {}
			}
		}]}`)

		// Act
		_, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should skip transcript panel with empty params token", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"engagementPanels": [`+transcriptPanel("")+`]}`)

		// Act
		_, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should scan panels in order and return the first qualifying descriptor", func(t *testing.T) {
		// Arrange
		state := stateFromJSON(t, `{"engagementPanels": [
			{"engagementPanelSectionListRenderer": {"targetId": "engagement-panel-comments-section"}},
			`+transcriptPanel("first-token")+`,
			`+transcriptPanel("second-token")+`
		]}`)

		// Act
		endpoint, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, "first-token", endpoint.Params)
	})

	t.Run("should tolerate malformed entries at every nesting level", func(t *testing.T) {
		// Arrange - non-object panel entries, wrong value types, missing keys
		state := stateFromJSON(t, `{"engagementPanels": [
			"not an object",
			42,
			{"engagementPanelSectionListRenderer": "not an object"},
			{"engagementPanelSectionListRenderer": {"targetId": 7}},
			{"engagementPanelSectionListRenderer": {
				"targetId": "engagement-panel-searchable-transcript",
				"content": {"continuationItemRenderer": {"continuationEndpoint": {}}}
			}},
			`+transcriptPanel("survivor")+`
		]}`)

		// Act
		endpoint, ok := FindTranscriptEndpoint(state)

		// Assert
		assert.True(t, ok, "malformed panels disqualify themselves without failing resolution")
		assert.Equal(t, "survivor", endpoint.Params)
	})

	t.Run("should handle nil state", func(t *testing.T) {
		// Act
		_, ok := FindTranscriptEndpoint(nil)

		// Assert
		assert.False(t, ok)
	})
}
