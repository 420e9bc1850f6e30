// Package adapter provides transport-layer abstractions for communicating
// with the bookman server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/hksalaudeen/bookman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the bookman
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns it. Returns an error if
	// the request fails or the server responds with a non-2xx status.
	Login(ctx context.Context, request models.LoginRequest) (string, error)

	// ListBooks retrieves the books matching filter. Zero-valued filter
	// fields are omitted from the query string.
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)

	// CreateBook stores a new book owned by the authenticated user and
	// returns the server-side record.
	CreateBook(ctx context.Context, request models.CreateBookRequest) (models.Book, error)

	// UpdateBook applies a partial update to the identified book. Returns
	// [ErrForbidden] (wrapped) when the book belongs to another user and
	// [ErrNotFound] (wrapped) when it does not exist.
	UpdateBook(ctx context.Context, bookID int64, request models.UpdateBookRequest) (models.Book, error)

	// DeleteBook removes the identified book. Same error mapping as
	// UpdateBook.
	DeleteBook(ctx context.Context, bookID int64) error
}
