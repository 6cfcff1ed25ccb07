package videoid

import "regexp"

// Pre-compiled patterns for performance, tried in order. The URL-shaped
// pattern must run before the bare-identifier fallback so a fragment of a
// longer URL is never mistaken for a literal identifier.
var patterns = []*regexp.Regexp{
	// "v=<id>" or "/<id>" terminated by a query boundary or end of input
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})(?:[?&]|$)`),
	// the entire input is a bare 11-character identifier
	regexp.MustCompile(`^([0-9A-Za-z_-]{11})$`),
}

// Extract derives the canonical 11-character video identifier from a raw
// watch URL, shortened URL, or bare identifier string. It returns false when
// no pattern matches; it never performs I/O.
func Extract(input string) (string, bool) {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1], true
		}
	}
	return "", false
}
