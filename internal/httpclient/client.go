// Package httpclient builds the HTTP client used to reach the users API.
package httpclient

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole request, from dialing to reading the body.
const DefaultTimeout = 10 * time.Second

// New returns a client whose requests are bounded by timeout. A zero timeout
// falls back to DefaultTimeout.
func New(timeout time.Duration) (*http.Client, error) {
	if timeout < 0 {
		return nil, errors.New("http client timeout must not be negative")
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	return client, nil
}

// Close releases idle keep-alive connections held by the client.
func Close(client *http.Client) {
	if client == nil {
		return
	}
	client.CloseIdleConnections()
}
