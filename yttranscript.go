// Package yttranscript extracts the spoken-word transcript of a public
// YouTube video without the official API, by scraping the watch page for the
// transcript continuation token and exchanging it at the internal
// get_transcript endpoint.
package yttranscript

import (
	"context"

	"yttranscript/internal/config"
	"yttranscript/internal/pagedata"
	"yttranscript/internal/transcript"
)

// Errors returned by GetTranscript; discriminate with errors.Is. Transport
// failures (DNS, connection, non-success HTTP status) surface as-is.
var (
	// ErrInvalidInput means the input was empty or carried no valid video ID.
	ErrInvalidInput = transcript.ErrInvalidInput
	// ErrPageDataNotFound means the watch page had no embedded bootstrap
	// data, typically a private, removed, or login-gated video.
	ErrPageDataNotFound = pagedata.ErrPageDataNotFound
	// ErrMalformedPageData means the embedded bootstrap data did not parse.
	ErrMalformedPageData = pagedata.ErrMalformedPageData
	// ErrTranscriptUnavailable means the video exposes no transcript panel.
	ErrTranscriptUnavailable = transcript.ErrTranscriptUnavailable
	// ErrNoTranscriptInResponse means the transcript API response lacked
	// the expected shape.
	ErrNoTranscriptInResponse = transcript.ErrNoTranscriptInResponse
	// ErrBadResponseBody means the transcript API body was not valid JSON.
	ErrBadResponseBody = transcript.ErrBadResponseBody
)

// EmptyTranscript is the successful result for a video whose transcript
// exists but flattens to no text.
const EmptyTranscript = transcript.EmptyTranscript

// GetTranscript fetches the plain-text transcript for a watch URL, shortened
// URL, or bare 11-character video ID. Each call is independent and
// self-contained; concurrent calls are safe. Cancellation and deadlines are
// the caller's responsibility via ctx.
func GetTranscript(ctx context.Context, videoURL string) (string, error) {
	fetcher := transcript.NewFetcher(config.NewConfiguration())
	return fetcher.GetTranscript(ctx, videoURL)
}
