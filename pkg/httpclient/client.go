package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a bounded-timeout HTTP GET client. Failed calls are not
// retried; a failed fetch requires a new caller-triggered action.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new HTTP client with the given per-call timeout
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do makes an HTTP GET request with optional extra headers and returns
// the response body. Any non-2xx status is an error.
func (c *Client) Do(targetURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("GET", targetURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json, text/plain, */*")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Fetch makes a plain HTTP GET request
func (c *Client) Fetch(targetURL string) ([]byte, error) {
	return c.Do(targetURL, nil)
}

// FetchRaw fetches a binary asset and returns the body together with
// its Content-Type. Used for image CDN requests.
func (c *Client) FetchRaw(targetURL string) ([]byte, string, error) {
	resp, err := c.httpClient.Get(targetURL)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// Head checks whether an asset is reachable without downloading it
func (c *Client) Head(targetURL string) error {
	resp, err := c.httpClient.Head(targetURL)
	if err != nil {
		log.Debug().Err(err).Str("url", targetURL).Msg("HEAD failed")
		return err
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return nil
}
