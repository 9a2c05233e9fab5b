package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrBadStatus       = errors.New("unexpected response status")
)

// GetBytes downloads url with client, reading at most maxBytes of body.
// maxBytes <= 0 disables the limit.
func GetBytes(ctx context.Context, client *http.Client, url string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}
	if maxBytes <= 0 {
		return io.ReadAll(resp.Body)
	}
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, resp.ContentLength)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, maxBytes)
	}
	return body, nil
}
