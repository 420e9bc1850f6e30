package service

import (
	"context"

	"github.com/hksalaudeen/bookman/models"
)

// AuthService covers user account lifecycle and JWT token handling.
type AuthService interface {
	// RegisterUser creates a new account with a hashed password.
	// Returns store.ErrEmailAlreadyExists (wrapped) if the email is taken.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)

	// Login verifies credentials and returns the matching user.
	// Returns ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, email string, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Returns ErrTokenIsExpiredOrInvalid on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveUser loads the account referenced by a token's subject claim.
	// Returns a wrapped store.ErrNoUserWasFound if the account no longer
	// exists.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)
}

// BookService covers book CRUD with ownership enforcement.
type BookService interface {
	// ListBooks returns all books matching filter. Available without
	// authentication; zero-valued filter fields are ignored.
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)

	// CreateBook persists a new book owned by the caller.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// UpdateBook applies a partial update to the caller's book.
	// Returns ErrNotBookOwner if the book belongs to another user.
	UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes the caller's book.
	// Returns ErrNotBookOwner if the book belongs to another user.
	DeleteBook(ctx context.Context, bookID int64, callerID int64) error
}
