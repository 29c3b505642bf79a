package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContentClient fetches remote assets: the blank form template and uploaded
// photo/signature images.
type ContentClient struct {
	httpClient *http.Client
}

func NewContentClient(timeout time.Duration) *ContentClient {
	return &ContentClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads url and returns the body plus the reported content type.
func (c *ContentClient) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch %s returned status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
