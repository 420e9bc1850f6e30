package store

import (
	"context"

	"github.com/hksalaudeen/bookman/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields populated. Returns ErrEmailAlreadyExists if
	// the email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by email. Returns ErrNoUserWasFound
	// if no account with that email exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by primary key. Returns
	// ErrNoUserWasFound if the id does not exist.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// BookRepository is the data-access contract for book records.
type BookRepository interface {
	// ListBooks returns all books matching filter. Zero-valued filter
	// fields are ignored; the result may be empty.
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)

	// CreateBook persists a new book and returns the stored record with
	// server-assigned fields populated.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// GetBookByID fetches a single book by primary key. Returns
	// ErrBookNotFound if the id does not exist.
	GetBookByID(ctx context.Context, bookID int64) (models.Book, error)

	// UpdateBook applies the non-nil fields of update to the targeted
	// book and returns the updated record. Returns ErrBookNotFound if
	// the id does not exist.
	UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes the book with the given id. Returns
	// ErrBookNotFound if the id does not exist.
	DeleteBook(ctx context.Context, bookID int64) error
}
