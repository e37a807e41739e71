// Package testmo is a read-only client for the Testmo REST API. It
// fetches projects, runs and results as ir trees and offers cursor
// based lookups over them; report assembly lives elsewhere.
package testmo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/testmotools/go-testmo/ir"
)

type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

type Option func(*Client)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithRetries(n int) Option {
	return func(c *Client) { c.http.SetRetryCount(n) }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New builds a client for a Testmo instance, e.g.
// https://example.testmo.net. The token is sent as a bearer token on
// every request.
func New(baseURL, token string, opts ...Option) *Client {
	hc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api/v1").
		SetAuthToken(token).
		SetHeader("accept", "application/json").
		SetTimeout(30 * time.Second).
		SetRetryCount(2)
	c := &Client{http: hc, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one GET and decodes the JSON reply into an ir tree. A
// non-2xx reply is an error carrying the status and body text. An
// empty body decodes to null.
func (c *Client) Do(ctx context.Context, req Request) (*ir.Node, error) {
	c.log.Debug().Str("request", req.String()).Msg("GET")
	r := c.http.R().SetContext(ctx)
	if len(req.Params) > 0 {
		r.SetQueryParamsFromValues(req.Params)
	}
	resp, err := r.Get(req.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", req.Endpoint, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("GET %s: %s: %s",
			req.Endpoint, resp.Status(), strings.TrimSpace(string(resp.Body())))
	}
	if len(resp.Body()) == 0 {
		return ir.Null(), nil
	}
	node, err := ir.FromJSON(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("GET %s: decode reply: %w", req.Endpoint, err)
	}
	return node, nil
}

// Collect drains a paginated endpoint: each page carries its entries
// under "result" plus page/last_page/next_page bookkeeping. The
// concatenated entries of all pages are returned in order.
func (c *Client) Collect(ctx context.Context, req Request) ([]*ir.Node, error) {
	var out []*ir.Node
	cur := req
	for {
		page, err := c.Do(ctx, cur)
		if err != nil {
			return nil, err
		}
		result := page.Get("result")
		if result == nil || result.Type != ir.ArrayType {
			return nil, fmt.Errorf("GET %s: reply has no result array", cur.Endpoint)
		}
		out = append(out, result.Values...)

		pageNo, err := intField(page, "page")
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", cur.Endpoint, err)
		}
		lastPage, err := intField(page, "last_page")
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", cur.Endpoint, err)
		}
		if pageNo == lastPage {
			return out, nil
		}
		nextPage, err := intField(page, "next_page")
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", cur.Endpoint, err)
		}
		cur = cur.WithParam("page", strconv.FormatInt(nextPage, 10))
	}
}

func intField(node *ir.Node, field string) (int64, error) {
	v := node.Get(field)
	if v == nil || v.Int64 == nil {
		return 0, fmt.Errorf("reply field %q is not an integer", field)
	}
	return *v.Int64, nil
}

// Projects fetches all projects across pages.
func (c *Client) Projects(ctx context.Context) ([]*ir.Node, error) {
	return c.Collect(ctx, ProjectsRequest())
}

// ProjectRuns fetches all runs of a project across pages.
func (c *Client) ProjectRuns(ctx context.Context, projectID int64) ([]*ir.Node, error) {
	return c.Collect(ctx, ProjectRunsRequest(projectID))
}

// RunResults fetches all results of a run across pages.
func (c *Client) RunResults(ctx context.Context, runID int64) ([]*ir.Node, error) {
	return c.Collect(ctx, RunResultsRequest(runID))
}
