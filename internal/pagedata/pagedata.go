package pagedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrPageDataNotFound means the watch page carried no bootstrap data
	// marker at all, which YouTube serves for private, removed, or
	// login-gated videos.
	ErrPageDataNotFound = errors.New("page data not found")

	// ErrMalformedPageData means the marker was present but the embedded
	// JSON literal did not parse.
	ErrMalformedPageData = errors.New("malformed page data")
)

// initialDataRegex captures the JSON literal assigned to ytInitialData.
// Non-greedy so the match stops at the closing script tag instead of
// swallowing subsequent script content.
var initialDataRegex = regexp.MustCompile(`(?s)var ytInitialData\s*=\s*(\{.*?\});\s*</script>`)

// Locate finds the bootstrap state YouTube embeds in watch-page HTML and
// parses it into an untyped map. The result is all-or-nothing: either the
// full state parses, or one of the package errors is returned.
func Locate(html string) (map[string]any, error) {
	match := initialDataRegex.FindStringSubmatch(html)
	if match == nil {
		return nil, ErrPageDataNotFound
	}

	var state map[string]any
	if err := json.Unmarshal([]byte(match[1]), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPageData, err)
	}

	return state, nil
}
