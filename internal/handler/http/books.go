package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/internal/utils"
	"github.com/hksalaudeen/bookman/models"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.BookFilter{
		Author: r.URL.Query().Get("author"),
	}

	if rawYear := r.URL.Query().Get("publicationYear"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			log.Err(err).Str("publicationYear", rawYear).Msg("non-integer publicationYear filter")
			writeError(w, "publicationYear must be an integer", http.StatusBadRequest)
			return
		}
		filter.PublicationYear = year
	}

	books, err := h.services.BookService.ListBooks(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBooks").Msg("error listing books")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createBook").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("book creation request failed validation")
		if !writeValidationErrors(w, err) {
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	book := models.Book{
		Title:           request.Title,
		Author:          request.Author,
		PublicationYear: request.PublicationYear,
		UserID:          userID,
	}

	createdBook, err := h.services.BookService.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("error creating book")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Int64("book_id", createdBook.BookID).Int64("user_id", userID).Msg("book created")

	utils.WriteJSON(w, createdBook, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateBook").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-integer book id")
		writeError(w, "book not found", http.StatusNotFound)
		return
	}

	var request models.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateBook").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		log.Err(err).Str("func", "*Handler.updateBook").Msg("book update request failed validation")
		if !writeValidationErrors(w, err) {
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if request.Empty() {
		log.Error().Int64("book_id", bookID).Msg("update request carries no fields")
		writeError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	updatedBook, err := h.services.BookService.UpdateBook(ctx, request.Update(bookID, userID))
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.updateBook").
			Int64("book_id", bookID).
			Int64("user_id", userID).
			Msg("error updating book")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.BookResponse{
		Message: "book updated successfully",
		Book:    updatedBook,
	}, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteBook").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-integer book id")
		writeError(w, "book not found", http.StatusNotFound)
		return
	}

	if err := h.services.BookService.DeleteBook(ctx, bookID, userID); err != nil {
		log.Err(err).
			Str("func", "*Handler.deleteBook").
			Int64("book_id", bookID).
			Int64("user_id", userID).
			Msg("error deleting book")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "book deleted successfully"}, http.StatusOK)
}
