package models

// MessageResponse is the generic `{message}` body returned by endpoints
// that confirm an action without returning a full entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the signed bearer token returned by a
// successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// BookResponse is the `{message, book}` body returned by a successful
// book update.
type BookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

// ValidationErrorResponse lists every request-validation rule that was
// violated, one entry per failing field.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
