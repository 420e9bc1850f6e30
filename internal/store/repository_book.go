package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/models"
	"github.com/jackc/pgerrcode"
)

// bookRepository is the PostgreSQL-backed implementation of
// [BookRepository]. It executes all book CRUD operations against the
// "books" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (book_id, user_id, filter values).
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// ListBooks retrieves all books matching filter, ordered by id.
//
// Returns an empty slice when no records match.
func (r *bookRepository) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.ListBooks").
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.ListBooks").
			Str("author", filter.Author).
			Int("publication_year", filter.PublicationYear).
			Bool("retryable", r.errorClassifier.Classify(err) == Retryable).
			Msg("failed to execute book listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 50)

	for rows.Next() {
		var book models.Book

		scanErr := rows.Scan(
			&book.BookID,
			&book.Title,
			&book.Author,
			&book.PublicationYear,
			&book.UserID,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*bookRepository.ListBooks").
				Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*bookRepository.ListBooks").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return books, nil
}

// CreateBook persists a new book record owned by book.UserID and returns
// the stored record with server-assigned fields populated.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrOwnerDoesNotExist].
//   - Any other driver-level error → wrapped with [ErrExecutingStatement].
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createBook, book.Title, book.Author, book.PublicationYear, book.UserID)

	var created models.Book
	err := row.Scan(
		&created.BookID,
		&created.Title,
		&created.Author,
		&created.PublicationYear,
		&created.UserID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.CreateBook").
			Int64("user_id", book.UserID).
			Bool("retryable", r.errorClassifier.Classify(err) == Retryable).
			Msg("error creating book")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Book{}, ErrOwnerDoesNotExist
		default:
			return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

// GetBookByID fetches a single book by primary key.
//
// Returns [ErrBookNotFound] when no row matches.
func (r *bookRepository) GetBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.DB.QueryRowContext(ctx, getBookByID, bookID)

	err := row.Scan(
		&book.BookID,
		&book.Title,
		&book.Author,
		&book.PublicationYear,
		&book.UserID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).
			Str("func", "*bookRepository.GetBookByID").
			Int64("book_id", bookID).
			Bool("retryable", r.errorClassifier.Classify(err) == Retryable).
			Msg("error fetching book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// UpdateBook applies the non-nil fields of update to the targeted book and
// returns the updated record.
//
// The WHERE clause matches on book_id only; ownership is checked by the
// service layer before this call.
//
// Returns [ErrBookNotFound] when the id does not exist.
func (r *bookRepository) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.UpdateBook").
			Int64("book_id", update.BookID).
			Msg("failed to build update query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Book
	row := r.DB.QueryRowContext(ctx, query, args...)

	err = row.Scan(
		&updated.BookID,
		&updated.Title,
		&updated.Author,
		&updated.PublicationYear,
		&updated.UserID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).
			Str("func", "*bookRepository.UpdateBook").
			Int64("book_id", update.BookID).
			Bool("retryable", r.errorClassifier.Classify(err) == Retryable).
			Msg("error updating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteBook removes the book with the given id.
//
// Returns [ErrBookNotFound] when no row was deleted.
func (r *bookRepository) DeleteBook(ctx context.Context, bookID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteBook, bookID)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.DeleteBook").
			Int64("book_id", bookID).
			Bool("retryable", r.errorClassifier.Classify(err) == Retryable).
			Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
