package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source returns candidate posts carrying a campaign's project tag.
type Source interface {
	SearchPosts(ctx context.Context, projectTag string) ([]RawPost, error)
}

var ErrAllMirrorsFailed = errors.New("all discovery mirrors failed")

// HTTPClient queries mirror search endpoints in order until one answers.
type HTTPClient struct {
	baseURLs []string
	client   *http.Client
	logger   *observability.Logger
}

func NewHTTPClient(baseURLs []string, timeout time.Duration, logger *observability.Logger) *HTTPClient {
	return &HTTPClient{
		baseURLs: baseURLs,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type searchResponse struct {
	Posts []RawPost `json:"posts"`
}

// SearchPosts fetches posts tagged with both the platform tag and projectTag.
func (c *HTTPClient) SearchPosts(ctx context.Context, projectTag string) ([]RawPost, error) {
	query := scoring.PlatformTag + " #" + scoring.NormalizeTag(projectTag)
	ctx = observability.WithFields(ctx, observability.Field{Key: "project_tag", Value: projectTag})

	for _, base := range c.baseURLs {
		endpoint := strings.TrimRight(base, "/") + "/search?" + url.Values{"q": {query}}.Encode()

		posts, err := c.fetch(ctx, endpoint)
		if err != nil {
			c.logger.Warn(ctx, "discovery mirror failed",
				observability.Field{Key: "mirror", Value: base},
				observability.Field{Key: "error", Value: err.Error()})
			continue
		}
		return posts, nil
	}

	return nil, ErrAllMirrorsFailed
}

func (c *HTTPClient) fetch(ctx context.Context, endpoint string) ([]RawPost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	// Mirrors answer either a bare array or {"posts": [...]}.
	var posts []RawPost
	if err := decodeBody(body, &posts); err == nil {
		return posts, nil
	}
	var wrapped searchResponse
	if err := decodeBody(body, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid body format: %w", err)
	}
	return wrapped.Posts, nil
}

// decodeBody keeps numbers as json.Number so 64-bit post ids survive intact.
func decodeBody(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
