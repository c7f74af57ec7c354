package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// CatalogClient is the narrow surface the search handler proxies through.
type CatalogClient interface {
	Search(ctx context.Context, params url.Values) (json.RawMessage, error)
}

// UnogsClient talks to the unogsNG catalog API on RapidAPI. The response body
// is passed through untouched; this service owns no catalog semantics.
type UnogsClient struct {
	apiKey     string
	apiHost    string
	httpClient *http.Client
}

func NewUnogsClient(apiKey, apiHost string) *UnogsClient {
	return &UnogsClient{
		apiKey:     apiKey,
		apiHost:    apiHost,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *UnogsClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

func (c *UnogsClient) Search(ctx context.Context, params url.Values) (json.RawMessage, error) {
	searchURL := fmt.Sprintf("https://%s/search?%s", c.apiHost, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog search failed with status %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
