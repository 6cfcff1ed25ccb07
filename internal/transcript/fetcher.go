package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"yttranscript/internal/config"
	"yttranscript/internal/pagedata"
	"yttranscript/internal/panels"
	"yttranscript/internal/videoid"
)

// Realistic browser User-Agent to avoid being flagged as a bot
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher extracts a video's transcript by scraping the watch page for the
// transcript continuation token and exchanging it at the internal
// transcript endpoint. Each call is self-contained; a Fetcher is safe for
// concurrent use.
type Fetcher struct {
	cfg    *config.Configuration
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a new Fetcher instance
func NewFetcher(cfg *config.Configuration) *Fetcher {
	return NewFetcherWithLogger(cfg, nil)
}

// NewFetcherWithLogger creates a new Fetcher instance with custom logger
func NewFetcherWithLogger(cfg *config.Configuration, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		cfg:    cfg,
		client: newHTTPClient(cfg.GetHTTPTimeout()),
		logger: logger,
	}
}

// newHTTPClient creates an HTTP client for the two short-lived requests the
// pipeline makes, with explicit connection-establishment timeouts
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// clientContext identifies this client to the transcript endpoint.
type clientContext struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
}

// transcriptRequest is the JSON body POSTed to the transcript endpoint. The
// params token is echoed back verbatim; its contents are never interpreted.
type transcriptRequest struct {
	Context clientContext `json:"context"`
	Params  string        `json:"params"`
}

// GetTranscript fetches the plain-text transcript for a watch URL, shortened
// URL, or bare video ID. The pipeline is strictly sequential: fetch page,
// locate bootstrap state, resolve the continuation endpoint, exchange the
// token, flatten segments. Every stage fails fast; no retries are made.
func (f *Fetcher) GetTranscript(ctx context.Context, videoURL string) (string, error) {
	if videoURL == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	videoID, ok := videoid.Extract(videoURL)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, videoURL)
	}

	f.logger.Debug("extracted video identifier",
		zap.String("video_id", videoID),
		zap.String("input", videoURL))

	html, err := f.fetchWatchPage(ctx, videoID)
	if err != nil {
		return "", err
	}

	state, err := pagedata.Locate(html)
	if err != nil {
		return "", err
	}

	endpoint, ok := panels.FindTranscriptEndpoint(state)
	if !ok {
		f.logger.Info("no transcript panel on watch page",
			zap.String("video_id", videoID))
		return "", ErrTranscriptUnavailable
	}

	rawSegments, err := f.fetchSegments(ctx, endpoint.Params)
	if err != nil {
		return "", err
	}

	text := flattenSegments(rawSegments)
	if text == "" {
		f.logger.Info("transcript present but produced no text",
			zap.String("video_id", videoID),
			zap.Int("segment_count", len(rawSegments)))
		return EmptyTranscript, nil
	}

	f.logger.Info("transcript extracted",
		zap.String("video_id", videoID),
		zap.Int("segment_count", len(rawSegments)),
		zap.Int("length", len(text)))

	return text, nil
}

// fetchWatchPage GETs the canonical watch page for a video and returns its
// HTML, requesting English-language content
func (f *Fetcher) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	watchURL := fmt.Sprintf(f.cfg.GetWatchURL(), videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create watch page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Error("watch page request failed with non-200 status",
			zap.String("url", watchURL),
			zap.Int("status_code", resp.StatusCode))
		return "", fmt.Errorf("watch page request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read watch page body: %w", err)
	}

	return string(body), nil
}

// fetchSegments POSTs the continuation token to the transcript endpoint and
// returns the raw caption segments from the response
func (f *Fetcher) fetchSegments(ctx context.Context, params string) ([]json.RawMessage, error) {
	reqBody, err := json.Marshal(transcriptRequest{
		Context: clientContext{
			Client: innertubeClient{
				ClientName:    f.cfg.GetClientName(),
				ClientVersion: f.cfg.GetClientVersion(),
			},
		},
		Params: params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.GetTranscriptURL(), bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Error("transcript request failed with non-200 status",
			zap.String("url", f.cfg.GetTranscriptURL()),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("transcript request failed: status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponseBody, err)
	}

	segments, ok := initialSegments(apiResp)
	if !ok {
		return nil, ErrNoTranscriptInResponse
	}
	return segments, nil
}
