// Package upstream is the gateway to the HR REST backend. Every call goes
// through one rate limiter and one timeout, and every failure comes back as a
// domain error whose message is already fit for the user.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"hrportal/internal/domain"
)

const maxBodyBytes = 8 << 20

type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RPS        float64
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	limit := rate.Inf
	burst := 1
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
		burst = max(1, int(opts.RPS))
	}
	return &Client{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		http:    hc,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// do performs one request and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.UpstreamError{Message: domain.GenericErrorMessage, Err: err}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, domain.InternalError{Msg: "encode request", Err: err}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, domain.InternalError{Msg: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Message: ExtractMessage(nil, err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.UpstreamError{Status: resp.StatusCode, Message: ExtractMessage(nil, err), Err: err}
	}
	if resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

// statusError maps an upstream failure onto the domain taxonomy while keeping
// the upstream error underneath.
func statusError(status int, body []byte) error {
	up := domain.UpstreamError{
		Status:  status,
		Message: ExtractMessage(body, fmt.Errorf("upstream returned %d", status)),
	}
	switch status {
	case http.StatusNotFound:
		return domain.NotFoundError{Msg: up.Message, Err: up}
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return domain.ValidationError{Msg: up.Message, Err: up}
	case http.StatusConflict:
		return domain.ConflictError{Msg: up.Message, Err: up}
	default:
		return up
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeEntity(raw, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.do(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeEntity(raw, out)
}

// listPage fetches one page of a paginated collection.
func listPage[T any](ctx context.Context, c *Client, path string, p domain.ListParams) (domain.PageEnvelope[T], error) {
	var env domain.PageEnvelope[T]
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
		q.Set("direction", string(domain.ParseDirection(string(p.Direction))))
	}
	raw, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return env, err
	}
	if err := decode(raw, &env); err != nil {
		return env, err
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	return env, nil
}

// fetchAllPageSize is the per_page used when walking a whole collection.
const fetchAllPageSize = 100

const maxPages = 1000

// fetchAll walks every page of a collection in order.
func fetchAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	out := []T{}
	for page := 1; page <= maxPages; page++ {
		env, err := listPage[T](ctx, c, path, domain.ListParams{Page: page, PerPage: fetchAllPageSize})
		if err != nil {
			return nil, err
		}
		out = append(out, env.Data...)
		if env.LastPage <= page || len(env.Data) == 0 {
			return out, nil
		}
	}
	return nil, domain.UpstreamError{Message: fmt.Sprintf("%s: more than %d pages", path, maxPages)}
}

func escape(id string) string { return url.PathEscape(id) }
