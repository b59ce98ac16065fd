// Package client provides a typed HTTP client for the BookHaven API.
// The browse tool drives the catalog viewer through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	booksvc "github.com/calebrosario/bookhaven-backend/internal/books"
	"github.com/calebrosario/bookhaven-backend/pkg/enums"
	pkgerrors "github.com/calebrosario/bookhaven-backend/pkg/errors"
	"github.com/calebrosario/bookhaven-backend/pkg/types"
)

const defaultTimeout = 10 * time.Second

// BookInput is the request payload for create and update calls.
type BookInput struct {
	Title  string           `json:"title"`
	Author string           `json:"author"`
	Genre  string           `json:"genre"`
	Year   int              `json:"year"`
	Status enums.BookStatus `json:"status,omitempty"`
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %q", baseURL)
	}

	c := &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List fetches every catalog record.
func (c *Client) List(ctx context.Context) ([]booksvc.BookDTO, error) {
	var records []booksvc.BookDTO
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (*booksvc.BookDTO, error) {
	var record booksvc.BookDTO
	if err := c.do(ctx, http.MethodGet, "/api/books/"+id.String(), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create adds a record to the catalog.
func (c *Client) Create(ctx context.Context, input BookInput) (*booksvc.BookDTO, error) {
	var record booksvc.BookDTO
	if err := c.do(ctx, http.MethodPost, "/api/books", input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces every mutable field of a record.
func (c *Client) Update(ctx context.Context, id uuid.UUID, input BookInput) (*booksvc.BookDTO, error) {
	var record booksvc.BookDTO
	if err := c.do(ctx, http.MethodPut, "/api/books/"+id.String(), input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a record from the catalog.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/books/"+id.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "read response body")
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, payload)
	}

	if dest == nil {
		return nil
	}
	envelope := types.SuccessEnvelope{Data: dest}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "decode response body")
	}
	return nil
}

// decodeAPIError converts an error envelope back into a typed error so
// callers can branch on the same codes the server uses.
func decodeAPIError(status int, payload []byte) error {
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Error.Code == "" {
		return pkgerrors.New(pkgerrors.CodeNetwork, fmt.Sprintf("unexpected response status %d", status))
	}

	code := pkgerrors.Code(envelope.Error.Code)
	apiErr := pkgerrors.New(code, envelope.Error.Message)
	if details, ok := envelope.Error.Details.(map[string]any); ok && len(details) > 0 {
		converted := make(map[string]string, len(details))
		for field, message := range details {
			if text, ok := message.(string); ok {
				converted[field] = text
			}
		}
		return apiErr.WithDetails(converted)
	}
	return apiErr
}
