// Package station provides the shared REST client for the upstream
// Station monolith. Station speaks snake_case JSON over HTTPS with a
// versioned Accept header; every domain service funnels its single
// upstream call through this client.
package station

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/pkg/response"
)

// AcceptHeader is the versioned media type Station expects.
const AcceptHeader = "application/vnd.*company-data-covered.com; version=1"

// TokenSource supplies the bearer token attached to authenticated
// upstream calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client wraps a resty client configured for Station.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger zerolog.Logger
}

// NewClient builds a Station client rooted at baseURL.
func NewClient(baseURL string, tokens TokenSource, logger zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", AcceptHeader)

	return &Client{http: http, tokens: tokens, logger: logger}
}

type callOptions struct {
	useToken bool
	query    url.Values
}

// Option customises a single upstream call.
type Option func(*callOptions)

// WithoutToken omits the Authorization header. A handful of Station
// endpoints are called unauthenticated; the per-call toggle is part of
// the observed contract.
func WithoutToken() Option {
	return func(o *callOptions) { o.useToken = false }
}

// WithQuery appends query parameters to the request URL.
func WithQuery(q url.Values) Option {
	return func(o *callOptions) { o.query = q }
}

// QueryOf applies opts and returns the resulting query parameters.
// Fakes standing in for the client use it to observe what a service
// asked for.
func QueryOf(opts []Option) url.Values {
	options := callOptions{useToken: true}
	for _, opt := range opts {
		opt(&options)
	}
	return options.query
}

// Get issues a GET and unmarshals the response body into out (when out
// is non-nil).
func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...Option) error {
	return c.do(ctx, resty.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}, opts ...Option) error {
	return c.do(ctx, resty.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}, opts ...Option) error {
	return c.do(ctx, resty.MethodPut, path, body, out, opts...)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}, opts ...Option) error {
	return c.do(ctx, resty.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out interface{}, opts ...Option) error {
	return c.do(ctx, resty.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts ...Option) error {
	options := callOptions{useToken: true}
	for _, opt := range opts {
		opt(&options)
	}

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if options.query != nil {
		req.SetQueryParamsFromValues(options.query)
	}
	if options.useToken {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("station: acquire token: %w", err)
		}
		req.SetAuthToken(token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("station call failed")
		return fmt.Errorf("station %s %s: %w", method, path, err)
	}

	if resp.IsError() {
		se := parseError(resp.StatusCode(), resp.Body())
		c.logger.Error().
			Int("status", se.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("station returned error status")
		return se
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("station %s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// parseError builds a StationError from an upstream error body. Station
// validation failures look like {"errors": {"field": ["msg", ...]}};
// other failures may carry {"error": "..."} or an opaque body.
func parseError(status int, body []byte) *response.StationError {
	se := &response.StationError{StatusCode: status}
	if len(body) == 0 {
		return se
	}

	var structured struct {
		Errors  map[string][]string `json:"errors"`
		Error   string              `json:"error"`
		Message string              `json:"message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil {
		se.FieldErrors = structured.Errors
		switch {
		case structured.Error != "":
			se.Message = structured.Error
		case structured.Message != "":
			se.Message = structured.Message
		}
	}
	return se
}
