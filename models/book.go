package models

import "time"

// Book represents a single book record owned by a registered user.
type Book struct {
	// BookID is the internal unique identifier of the book,
	// assigned by the database on creation.
	BookID int64 `json:"id"`

	// Title is the title of the book. Always non-empty.
	Title string `json:"title"`

	// Author is the author of the book. Always non-empty.
	Author string `json:"author"`

	// PublicationYear is the year the book was published,
	// between 1000 and the current year inclusive.
	PublicationYear int `json:"publicationYear"`

	// UserID references the user that owns the record. Only the owner
	// may update or delete the book.
	UserID int64 `json:"userId"`

	// CreatedAt is the timestamp when the book record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookFilter narrows a book listing. Zero-valued fields are ignored;
// non-zero fields are combined with AND and matched exactly.
type BookFilter struct {
	Author          string
	PublicationYear int
}

// BookUpdate is a partial update of a single book. Nil fields are left
// untouched; non-nil fields replace the stored value. BookID and UserID
// identify the target record and the acting user respectively.
type BookUpdate struct {
	BookID int64
	UserID int64

	Title           *string
	Author          *string
	PublicationYear *int
}
