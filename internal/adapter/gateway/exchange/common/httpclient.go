package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	Base string
	HC   *http.Client
	UA   string
}

func New(base string) *Client { return NewWith(base, DefaultOptionsFromEnv()) }

func NewWith(base string, o Options) *Client {
	return &Client{
		Base: base,
		UA:   o.UserAgent,
		HC: &http.Client{
			Timeout: o.Timeout,
			Transport: &http.Transport{
				DialContext:     (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
				MaxIdleConns:    100,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
}

// GetJSON issues one GET and decodes the JSON body into v. Non-2xx
// responses are errors carrying the body.
func (c *Client) GetJSON(ctx context.Context, path string, query map[string]string, v any) error {
	u := c.Base + path
	if len(query) > 0 {
		q := url.Values{}
		for k, val := range query {
			q.Set(k, val)
		}
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.UA != "" {
		req.Header.Set("User-Agent", c.UA)
	}
	res, err := c.HC.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return fmt.Errorf("http %d: %s", res.StatusCode, string(b))
	}
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
