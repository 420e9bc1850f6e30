package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// RegisterRequest is the payload of POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks every field and accumulates all violations.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest is the payload of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks every field and accumulates all violations.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateBookRequest is the payload of POST /api/books.
type CreateBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
}

// Validate checks every field and accumulates all violations.
// The publication year must lie in [1000, current year].
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.PublicationYear,
			validation.Required,
			validation.Min(1000),
			validation.Max(time.Now().Year()),
		),
	)
}

// UpdateBookRequest is the payload of PATCH /api/books/{id}.
// Every field is optional; a nil field is left unchanged.
type UpdateBookRequest struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	PublicationYear *int    `json:"publicationYear"`
}

// Validate applies the same per-field rules as creation, but only to
// fields that are present in the payload.
func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Author, validation.NilOrNotEmpty),
		validation.Field(&r.PublicationYear,
			validation.Min(1000),
			validation.Max(time.Now().Year()),
		),
	)
}

// Empty reports whether the request carries no fields to apply.
func (r UpdateBookRequest) Empty() bool {
	return r.Title == nil && r.Author == nil && r.PublicationYear == nil
}

// Update converts the request into a [BookUpdate] targeting bookID on
// behalf of userID.
func (r UpdateBookRequest) Update(bookID, userID int64) BookUpdate {
	return BookUpdate{
		BookID:          bookID,
		UserID:          userID,
		Title:           r.Title,
		Author:          r.Author,
		PublicationYear: r.PublicationYear,
	}
}
