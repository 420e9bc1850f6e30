package service

import (
	"context"
	"fmt"

	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/internal/store"
	"github.com/hksalaudeen/bookman/models"
)

// bookService is the concrete implementation of BookService.
//
// Mutating operations fetch the target record first and compare its owner
// against the caller before touching storage, so a caller can never modify
// or delete another user's book.
type bookService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewBookService constructs a BookService backed by the given repository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// ListBooks returns all books matching filter, in id order.
func (b *bookService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := b.bookRepository.ListBooks(ctx, filter)
	if err != nil {
		log.Err(err).Msg("book listing ended with error")
		return nil, fmt.Errorf("book listing ended with error: %w", err)
	}

	return books, nil
}

// CreateBook persists a new book record owned by book.UserID.
func (b *bookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if book.UserID == 0 {
		log.Error().Str("title", book.Title).Msg("book has no owner")
		return models.Book{}, ErrInvalidDataProvided
	}

	createdBook, err := b.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).
			Str("title", book.Title).
			Int64("user_id", book.UserID).
			Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// UpdateBook applies the non-nil fields of update to the targeted book.
//
// Returns a wrapped store.ErrBookNotFound if the book does not exist, or
// ErrNotBookOwner if it belongs to a user other than update.UserID.
func (b *bookService) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := b.checkOwnership(ctx, update.BookID, update.UserID); err != nil {
		return models.Book{}, err
	}

	updatedBook, err := b.bookRepository.UpdateBook(ctx, update)
	if err != nil {
		log.Err(err).
			Int64("book_id", update.BookID).
			Int64("user_id", update.UserID).
			Msg("book update ended with error")
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	return updatedBook, nil
}

// DeleteBook removes the book with the given id.
//
// Returns a wrapped store.ErrBookNotFound if the book does not exist, or
// ErrNotBookOwner if it belongs to a user other than callerID.
func (b *bookService) DeleteBook(ctx context.Context, bookID int64, callerID int64) error {
	log := logger.FromContext(ctx)

	if err := b.checkOwnership(ctx, bookID, callerID); err != nil {
		return err
	}

	if err := b.bookRepository.DeleteBook(ctx, bookID); err != nil {
		log.Err(err).
			Int64("book_id", bookID).
			Int64("user_id", callerID).
			Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}

// checkOwnership fetches the book and verifies it belongs to callerID.
// The not-found case is surfaced before the ownership case, so probing a
// missing id yields the same answer for everyone.
func (b *bookService) checkOwnership(ctx context.Context, bookID int64, callerID int64) error {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.GetBookByID(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book lookup ended with error")
		return fmt.Errorf("book lookup ended with error: %w", err)
	}

	if book.UserID != callerID {
		log.Error().
			Int64("book_id", bookID).
			Int64("owner_id", book.UserID).
			Int64("caller_id", callerID).
			Msg("caller is not the book owner")
		return ErrNotBookOwner
	}

	return nil
}
