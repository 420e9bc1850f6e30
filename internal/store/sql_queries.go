package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hksalaudeen/bookman/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createBook = `INSERT INTO books (title, author, publication_year, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING book_id, title, author, publication_year, user_id, created_at, updated_at;`

	getBookByID = `SELECT book_id, title, author, publication_year, user_id, created_at, updated_at
    FROM books
    WHERE book_id = $1;`

	deleteBook = `DELETE FROM books
    WHERE book_id = $1;`
)

// bookColumns is the canonical column order used by every book query that
// returns full records. Scan destinations must follow the same order.
var bookColumns = []string{
	"book_id",
	"title",
	"author",
	"publication_year",
	"user_id",
	"created_at",
	"updated_at",
}

// psql builds PostgreSQL-flavoured ($1, $2, ...) parameterised queries.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildListBooksQuery constructs the filtered listing query. Zero-valued
// filter fields contribute no WHERE clause; non-zero fields are combined
// with AND and matched exactly.
func buildListBooksQuery(filter models.BookFilter) (string, []any, error) {
	query := psql.
		Select(bookColumns...).
		From("books").
		OrderBy("book_id")

	if filter.Author != "" {
		query = query.Where(squirrel.Eq{"author": filter.Author})
	}
	if filter.PublicationYear != 0 {
		query = query.Where(squirrel.Eq{"publication_year": filter.PublicationYear})
	}

	return query.ToSql()
}

// buildUpdateBookQuery constructs a partial UPDATE that sets only the
// non-nil fields of update, always refreshes updated_at, and returns the
// full updated record via RETURNING.
func buildUpdateBookQuery(update models.BookUpdate) (string, []any, error) {
	query := psql.
		Update("books").
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Author != nil {
		query = query.Set("author", *update.Author)
	}
	if update.PublicationYear != nil {
		query = query.Set("publication_year", *update.PublicationYear)
	}

	query = query.
		Where(squirrel.Eq{"book_id": update.BookID}).
		Suffix("RETURNING " + strings.Join(bookColumns, ", "))

	return query.ToSql()
}
