// Package adminclient implements the data-fetching and form-submission
// pipeline the administration pages share: resource services (reads,
// errors propagate), resource actions (writes, normalized results),
// view controllers (load state machines) and form controllers
// (validation, changed-field payloads, media-first submission).
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"planora/internal/dto"
)

// Client is the shared fetch wrapper every service and action goes
// through. It decodes the API envelope and nothing more: no retries,
// no implicit timeouts (callers bound requests via context).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zerolog.Logger
}

func New(baseURL string, log *zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        log,
	}
}

// NewWithHTTPClient is used by tests to point at an httptest server.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, log *zerolog.Logger) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient, log: log}
}

// APIError is a non-2xx response decoded from the API envelope.
type APIError struct {
	Code string
	Desc string
}

func (e *APIError) Error() string {
	if e.Desc != "" {
		return e.Desc
	}
	return e.Code
}

type envelope struct {
	Status string          `json:"status"`
	Error  *dto.Error      `json:"error,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// upload posts a multipart body with the file plus folder classification.
// The body streams through a pipe without buffering the file in memory;
// progress reports file bytes sent as a 0-100 percentage against size.
func (c *Client) upload(ctx context.Context, path, folder, fileName string, body io.Reader, size int64, progress func(int), out any) error {
	src := body
	if progress != nil && size > 0 {
		src = &progressReader{r: body, total: size, report: progress}
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := func() error {
			if err := mw.WriteField("folder", folder); err != nil {
				return fmt.Errorf("write folder field: %w", err)
			}
			part, err := mw.CreateFormFile("file", fileName)
			if err != nil {
				return fmt.Errorf("create form file: %w", err)
			}
			if _, err := io.Copy(part, src); err != nil {
				return fmt.Errorf("copy file content: %w", err)
			}
			return mw.Close()
		}()
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response (%d): %w", resp.StatusCode, err)
	}

	if env.Status != "ok" {
		apiErr := &APIError{Code: dto.ServiceUnavailable}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Desc = env.Error.Desc
		}
		return apiErr
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.total > 0 {
		percent := int(p.read * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.report(percent)
		}
	}
	return n, err
}

// Page is the typed pagination envelope list endpoints return.
type Page[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// ListOptions are the pagination/filter knobs list reads accept.
type ListOptions struct {
	Page     int
	PageSize int
	Status   string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", fmt.Sprint(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("pageSize", fmt.Sprint(o.PageSize))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	return q
}

// referencePageSize is the page size used when a view fetches a whole
// reference collection to resolve foreign keys client-side.
const referencePageSize = 1000
