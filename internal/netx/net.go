// Package netx holds small HTTP helpers shared by the API client.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxBody bounds how much of a response body is read into memory.
const maxBody = 4 << 20

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Status string
	Code   int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http %s %s: %s", e.Method, e.URL, e.Status)
}

// Get performs an HTTP GET with the given headers and returns the response
// body. A non-2xx status yields a *StatusError holding the body.
func Get(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method: http.MethodGet,
			URL:    url,
			Status: resp.Status,
			Code:   resp.StatusCode,
			Body:   body,
		}
	}
	return body, nil
}
