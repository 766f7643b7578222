// Package oembed performs the best-effort metadata lookup for a submitted track.
package oembed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/domain"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
	"github.com/MrSnakeDoc/songjournal/internal/utils"
)

// DefaultEndpoint is the provider's public oEmbed endpoint.
const DefaultEndpoint = "https://open.spotify.com/oembed"

// maxBodyBytes bounds how much of a response is decoded.
const maxBodyBytes = 1 << 20

// Metadata is what the journal keeps from a lookup.
type Metadata struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Placeholder returns the metadata used when a lookup fails.
func Placeholder() Metadata {
	return Metadata{Title: domain.UnknownTitle}
}

// ThumbnailPtr returns the thumbnail as stored on an entry (nil when absent).
func (m Metadata) ThumbnailPtr() *string {
	if m.Thumbnail == "" {
		return nil
	}
	t := m.Thumbnail
	return &t
}

// Cache stores metadata per track identifier. Implementations must treat a
// miss as ok=false with a nil error.
type Cache interface {
	Get(ctx context.Context, trackID string) (Metadata, bool, error)
	Put(ctx context.Context, trackID string, md Metadata) error
}

// Options configures a Client.
type Options struct {
	Endpoint string        // oEmbed endpoint, defaults to DefaultEndpoint
	Timeout  time.Duration // whole-request timeout, 0 = wait until the request settles
	Cache    Cache         // optional
}

// Client talks to the oEmbed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	cache      Cache
	logger     logger.Logger
}

// response is the subset of the oEmbed payload the journal reads.
type response struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// NewClient creates a Client.
func NewClient(opts Options, log logger.Logger) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		cache:  opts.Cache,
		logger: log,
	}
}

// Fetch performs one lookup for rawLink. Any transport failure, non-2xx
// status or undecodable body is returned as an error.
func (c *Client) Fetch(ctx context.Context, rawLink string) (Metadata, error) {
	reqURL, err := c.buildURL(rawLink)
	if err != nil {
		return Metadata{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return Metadata{}, fmt.Errorf("create oembed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("oembed request: %w", err)
	}
	defer utils.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Metadata{}, fmt.Errorf("oembed request failed with status %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return Metadata{}, fmt.Errorf("decode oembed response: %w", err)
	}

	return Metadata{
		Title:     payload.Title,
		Artist:    payload.AuthorName,
		Thumbnail: payload.ThumbnailURL,
	}, nil
}

// Enrich returns metadata for a submission and never fails: the cache is
// consulted first, then the endpoint, and placeholders fill whatever is missing.
func (c *Client) Enrich(ctx context.Context, rawLink, trackID string) Metadata {
	if c.cache != nil && trackID != "" {
		md, ok, err := c.cache.Get(ctx, trackID)
		switch {
		case err != nil:
			c.logger.Debug("metadata cache read failed",
				logger.String("track_id", trackID),
				logger.Error(err))
		case ok:
			return withDefaults(md)
		}
	}

	start := time.Now()
	md, err := c.Fetch(ctx, rawLink)
	if err != nil {
		c.logger.Warn("failed to fetch metadata",
			logger.String("track_id", trackID),
			logger.Duration("duration", time.Since(start)),
			logger.Error(err))
		return Placeholder()
	}

	md = withDefaults(md)
	if c.cache != nil && trackID != "" {
		if err := c.cache.Put(ctx, trackID, md); err != nil {
			c.logger.Debug("metadata cache write failed",
				logger.String("track_id", trackID),
				logger.Error(err))
		}
	}
	return md
}

func (c *Client) buildURL(rawLink string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid oembed endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("url", rawLink)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func withDefaults(md Metadata) Metadata {
	if md.Title == "" {
		md.Title = domain.UnknownTitle
	}
	return md
}
