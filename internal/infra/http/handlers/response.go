package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Kupenya/landPage/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// statusForError maps the usecase error taxonomy onto HTTP statuses. Anything
// unrecognized is an internal error.
func statusForError(err error) (int, string, string) {
	switch e := err.(type) {
	case *usecase.DomainError:
		switch e.Code {
		case usecase.CodeInvalidEmail, usecase.CodeTokenRequired:
			return http.StatusBadRequest, e.Code, e.Message
		case usecase.CodeTokenNotFound:
			return http.StatusNotFound, e.Code, e.Message
		case usecase.CodeTokenExpired:
			return http.StatusGone, e.Code, e.Message
		}
		return http.StatusBadRequest, e.Code, e.Message
	case *usecase.TechnicalError:
		// Details stay in the server log; clients get the code only.
		return http.StatusInternalServerError, e.Code, "internal error"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "internal error"
}
