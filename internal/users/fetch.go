package users

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vk/usersfetch/internal/ctxlog"
)

// DefaultEndpoint is the public API the records are fetched from.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

// Fetcher retrieves the user list with a single GET request.
type Fetcher struct {
	client   *http.Client
	endpoint string
}

// NewFetcher creates a Fetcher for endpoint. The client's timeout bounds the
// request.
func NewFetcher(client *http.Client, endpoint string) *Fetcher {
	return &Fetcher{client: client, endpoint: endpoint}
}

// Fetch performs the request and returns the decoded records unmodified.
// Errors are always one of NetworkError, HTTPStatusError, DecodeError or
// SchemaError.
func (f *Fetcher) Fetch(ctx context.Context) ([]Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Fetching users.", "method", http.MethodGet, "url", f.endpoint)

	if f.client == nil {
		return nil, &NetworkError{Err: errors.New("http client is not configured")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("Received HTTP response.", "status", resp.Status)

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	records, err := ParseRecords(body)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			logger.Warn("Unexpected response shape.", "received", schemaErr.Kind)
		}
		return nil, err
	}

	logger.Info("Users fetched.", "count", len(records))
	return records, nil
}
