package transcript

import "errors"

var (
	// ErrInvalidInput means the input was empty or no valid 11-character
	// video identifier could be extracted from it.
	ErrInvalidInput = errors.New("invalid video URL or ID")

	// ErrTranscriptUnavailable means the watch page parsed successfully but
	// the video exposes no transcript panel or continuation token.
	ErrTranscriptUnavailable = errors.New("transcript is not available for this video")

	// ErrNoTranscriptInResponse means the transcript API answered but its
	// JSON lacked the expected action/content shape.
	ErrNoTranscriptInResponse = errors.New("failed to extract transcript from response")

	// ErrBadResponseBody means the transcript API body was not valid JSON.
	ErrBadResponseBody = errors.New("malformed transcript response")
)

// EmptyTranscript is returned as a successful result when a transcript
// exists but its segments flatten to no text. It distinguishes "captions
// produced no text" from "no transcript at all", which is an error.
const EmptyTranscript = "transcript is available but empty"
