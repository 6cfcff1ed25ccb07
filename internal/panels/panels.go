// Package panels resolves the transcript-fetch continuation endpoint from a
// watch page's bootstrap state by scanning its engagement panels.
package panels

// The exact keys YouTube uses on the path from the bootstrap state to the
// transcript continuation token. Centralized so upstream schema drift
// surfaces as a single diff.
const (
	keyEngagementPanels      = "engagementPanels"
	keyPanelRenderer         = "engagementPanelSectionListRenderer"
	keyTargetID              = "targetId"
	keyContent               = "content"
	keyContinuationItem      = "continuationItemRenderer"
	keyContinuationEndpoint  = "continuationEndpoint"
	keyGetTranscriptEndpoint = "getTranscriptEndpoint"
	keyParams                = "params"
	transcriptPanelTargetID  = "engagement-panel-searchable-transcript"
)

// Endpoint is the continuation descriptor for a transcript fetch. Params is
// an opaque server-issued token, carried verbatim and never interpreted.
type Endpoint struct {
	Params string
}

// FindTranscriptEndpoint scans the bootstrap state's engagement panels in
// their given order and returns the first searchable-transcript panel's
// continuation endpoint. A missing panel collection, or a state where no
// panel qualifies, yields ok=false rather than an error: it means the video
// exposes no transcript panel, and the caller decides how to react.
func FindTranscriptEndpoint(state map[string]any) (Endpoint, bool) {
	panelList, ok := childList(state, keyEngagementPanels)
	if !ok {
		return Endpoint{}, false
	}

	for _, entry := range panelList {
		panel, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if params, ok := transcriptParams(panel); ok {
			return Endpoint{Params: params}, true
		}
	}

	return Endpoint{}, false
}

// transcriptParams reports whether a single panel is the searchable
// transcript panel carrying a continuation token. Absence of any key at any
// depth disqualifies the panel without failing the whole resolution.
func transcriptParams(panel map[string]any) (string, bool) {
	renderer, ok := childMap(panel, keyPanelRenderer)
	if !ok {
		return "", false
	}

	targetID, ok := childString(renderer, keyTargetID)
	if !ok || targetID != transcriptPanelTargetID {
		return "", false
	}

	content, ok := childMap(renderer, keyContent)
	if !ok {
		return "", false
	}
	continuation, ok := childMap(content, keyContinuationItem)
	if !ok {
		return "", false
	}
	endpoint, ok := childMap(continuation, keyContinuationEndpoint)
	if !ok {
		return "", false
	}
	getTranscript, ok := childMap(endpoint, keyGetTranscriptEndpoint)
	if !ok {
		return "", false
	}

	params, ok := childString(getTranscript, keyParams)
	if !ok || params == "" {
		return "", false
	}
	return params, true
}

// childMap safely navigates one level into an untyped JSON object.
func childMap(m map[string]any, key string) (map[string]any, bool) {
	child, ok := m[key].(map[string]any)
	return child, ok
}

// childList safely reads a JSON array value.
func childList(m map[string]any, key string) ([]any, bool) {
	child, ok := m[key].([]any)
	return child, ok
}

// childString safely reads a JSON string value.
func childString(m map[string]any, key string) (string, bool) {
	child, ok := m[key].(string)
	return child, ok
}
