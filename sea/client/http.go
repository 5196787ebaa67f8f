package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	headerAPIKey      = "X-API-KEY"
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Get performs a GET against path, relative to the base URL, and returns the
// raw response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.get(ctx, c.baseURL+path, query)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Post sends body as JSON to path and returns the raw response body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	resp, err := c.post(ctx, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Put is Post with the PUT method.
func (c *Client) Put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	resp, err := c.put(ctx, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) get(ctx context.Context, fullURL string, query url.Values) (*resty.Response, error) {
	return c.fetch(ctx, http.MethodGet, fullURL, query, nil)
}

func (c *Client) post(ctx context.Context, fullURL string, body interface{}) (*resty.Response, error) {
	return c.write(ctx, http.MethodPost, fullURL, body)
}

func (c *Client) put(ctx context.Context, fullURL string, body interface{}) (*resty.Response, error) {
	return c.write(ctx, http.MethodPut, fullURL, body)
}

func (c *Client) write(ctx context.Context, method, fullURL string, body interface{}) (*resty.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "encode request body")
	}
	return c.fetch(ctx, method, fullURL, nil, payload)
}

// fetch performs one round trip. Any non-2xx response becomes an *APIError.
func (c *Client) fetch(ctx context.Context, method, fullURL string, query url.Values, body []byte) (*resty.Response, error) {
	req := c.newRequest(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader(headerContentType, contentTypeJSON)
		req.SetBody(body)
	}

	log := c.log.WithFields(logrus.Fields{"method": method, "url": fullURL})
	log.Debug("sending request")

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, fullURL)
	}
	if resp.IsSuccess() {
		log.WithField("status", resp.StatusCode()).Debug("request succeeded")
		return resp, nil
	}

	apiErr := newAPIError(resp.StatusCode(), resp.Body())
	log.WithFields(logrus.Fields{
		"status": resp.StatusCode(),
		"kind":   apiErr.Kind.String(),
	}).Warn(apiErr.Message)
	return nil, apiErr
}

// newRequest sets the per-request headers. The API key header is only sent
// when one is configured.
func (c *Client) newRequest(ctx context.Context) *resty.Request {
	r := c.http.R()
	if ctx != nil {
		r.SetContext(ctx)
	}
	r.SetHeader(headerAccept, contentTypeJSON)
	if c.apiKey != "" {
		r.SetHeader(headerAPIKey, c.apiKey)
	}
	return r
}

// decodeJSON unmarshals a successful response body.
func decodeJSON(resp *resty.Response, out interface{}) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrapf(err, "decode %s response", resp.Request.URL)
	}
	return nil
}
