package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"bom-checker/feature/distributor"
)

// HTTPProvider fetches records from a part details endpoint.
type HTTPProvider struct {
	BaseURL  string
	ClientID string
	Token    string
	Client   *http.Client
}

// Lookup issues GET {BaseURL}/{part number}.
func (p *HTTPProvider) Lookup(ctx context.Context, partNumber string) (*distributor.Record, error) {
	endpoint := p.BaseURL + "/" + url.PathEscape(partNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.ClientID != "" {
		req.Header.Set("X-DIGIKEY-Client-Id", p.ClientID)
	}
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request for %s failed: %w", partNumber, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("lookup for %s returned status %d: %s", partNumber, resp.StatusCode, string(body))
	}

	return distributor.Decode(resp.Body, partNumber)
}
