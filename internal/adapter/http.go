package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hksalaudeen/bookman/internal/config"
	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/internal/utils"
	"github.com/hksalaudeen/bookman/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users/register.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/users/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users/login and, on success, stores and returns the bearer token
// from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (string, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/api/users/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	return h.token, nil
}

// ListBooks implements [ServerAdapter]. It GETs /api/books with the non-zero
// filter fields encoded as query parameters. No token is required.
func (h *httpServerAdapter) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	var result []models.Book

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)

	if filter.Author != "" {
		req.SetQueryParam("author", filter.Author)
	}
	if filter.PublicationYear != 0 {
		req.SetQueryParam("publicationYear", strconv.Itoa(filter.PublicationYear))
	}

	resp, err := req.Get("/api/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateBook implements [ServerAdapter]. It POSTs the book to /api/books with
// the stored bearer token and returns the server-side record.
func (h *httpServerAdapter) CreateBook(ctx context.Context, request models.CreateBookRequest) (models.Book, error) {
	var result models.Book

	resp, err := h.authorized(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return result, nil
}

// UpdateBook implements [ServerAdapter]. It PATCHes /api/books/{id} with the
// partial update and returns the updated record from the response.
func (h *httpServerAdapter) UpdateBook(ctx context.Context, bookID int64, request models.UpdateBookRequest) (models.Book, error) {
	var result models.BookResponse

	resp, err := h.authorized(ctx).
		SetBody(request).
		SetResult(&result).
		Patch(fmt.Sprintf("/api/books/%d", bookID))
	if err != nil {
		return models.Book{}, fmt.Errorf("update book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return result.Book, nil
}

// DeleteBook implements [ServerAdapter]. It DELETEs /api/books/{id}.
func (h *httpServerAdapter) DeleteBook(ctx context.Context, bookID int64) error {
	resp, err := h.authorized(ctx).
		Delete(fmt.Sprintf("/api/books/%d", bookID))
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}

	return mapHTTPError(resp)
}

// authorized prepares a request carrying the stored bearer token, if any.
func (h *httpServerAdapter) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}

	return req
}
