package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/panmitra/form49a-service/dto"
)

// StoreClient reads application records and document references from the
// record store's REST interface. The service never writes: persistence
// belongs to the intake subsystem.
type StoreClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewStoreClient(baseURL, apiKey string, timeout time.Duration) *StoreClient {
	return &StoreClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetApplication fetches one application row by primary key.
func (c *StoreClient) GetApplication(ctx context.Context, id string) (*dto.Application, error) {
	return c.getApplication(ctx, "id", id)
}

// GetApplicationByNumber fetches one application row by its public
// application number (the tracking-page key).
func (c *StoreClient) GetApplicationByNumber(ctx context.Context, applicationNo string) (*dto.Application, error) {
	return c.getApplication(ctx, "application_no", applicationNo)
}

func (c *StoreClient) getApplication(ctx context.Context, column, value string) (*dto.Application, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/applications?%s=eq.%s&limit=1",
		c.baseURL, column, url.QueryEscape(value))

	var apps []dto.Application
	if err := c.getJSON(ctx, endpoint, &apps); err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, dto.ErrApplicationNotFound
	}
	return &apps[0], nil
}

// ListDocuments fetches the uploaded document references of one application.
func (c *StoreClient) ListDocuments(ctx context.Context, applicationID string) ([]dto.ApplicationDocument, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/application_documents?application_id=eq.%s",
		c.baseURL, url.QueryEscape(applicationID))

	var docs []dto.ApplicationDocument
	if err := c.getJSON(ctx, endpoint, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *StoreClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("record store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("record store returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode record store response: %w", err)
	}
	return nil
}
