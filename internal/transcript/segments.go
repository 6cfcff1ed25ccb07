package transcript

import (
	"encoding/json"
	"strings"
)

// apiResponse mirrors the slice of the /get_transcript JSON that carries the
// caption segments. Every other field in the response is ignored.
type apiResponse struct {
	Actions []action `json:"actions"`
}

type action struct {
	UpdateEngagementPanelAction *struct {
		Content struct {
			TranscriptRenderer struct {
				Content struct {
					TranscriptSearchPanelRenderer struct {
						Body struct {
							TranscriptSegmentListRenderer struct {
								InitialSegments []json.RawMessage `json:"initialSegments"`
							} `json:"transcriptSegmentListRenderer"`
						} `json:"body"`
					} `json:"transcriptSearchPanelRenderer"`
				} `json:"content"`
			} `json:"transcriptRenderer"`
		} `json:"content"`
	} `json:"updateEngagementPanelAction"`
}

// segment is one timed caption entry. Segments are kept as raw JSON in
// apiResponse and decoded one at a time, so a single malformed segment is
// skipped instead of failing the whole transcript.
type segment struct {
	TranscriptSegmentRenderer *struct {
		Snippet struct {
			Runs []run `json:"runs"`
		} `json:"snippet"`
	} `json:"transcriptSegmentRenderer"`
}

// run is one contiguous text fragment within a segment.
type run struct {
	Text string `json:"text"`
}

// initialSegments extracts the segment list from a decoded transcript
// response. ok is false when the response lacks the expected
// action/content shape entirely, including a missing segment list.
func initialSegments(resp apiResponse) ([]json.RawMessage, bool) {
	if len(resp.Actions) == 0 {
		return nil, false
	}

	update := resp.Actions[0].UpdateEngagementPanelAction
	if update == nil {
		return nil, false
	}

	segments := update.Content.TranscriptRenderer.Content.
		TranscriptSearchPanelRenderer.Body.
		TranscriptSegmentListRenderer.InitialSegments
	if segments == nil {
		return nil, false
	}
	return segments, true
}

// flattenSegments joins caption segments into a single plain-text string.
// Runs within a segment are concatenated with no separator, skipping empty
// run texts; segments that yield no text are dropped; the remaining segment
// texts are joined with a single space and the result trimmed. Order is
// preserved throughout.
func flattenSegments(rawSegments []json.RawMessage) string {
	var parts []string

	for _, raw := range rawSegments {
		var seg segment
		if err := json.Unmarshal(raw, &seg); err != nil {
			continue
		}
		if seg.TranscriptSegmentRenderer == nil {
			continue
		}

		var sb strings.Builder
		for _, r := range seg.TranscriptSegmentRenderer.Snippet.Runs {
			if r.Text != "" {
				sb.WriteString(r.Text)
			}
		}
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
