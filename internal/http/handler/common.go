package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spendwise/expense-tracker/internal/domain"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondWithError sends a JSON error body with a human-readable message
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{Message: message})
}

// respondStorageError sends a 500 with an opaque error payload alongside the
// message, matching the {message, error} failure shape of the API
func respondStorageError(w http.ResponseWriter, message string, err error) {
	respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

// respondValidationError collapses validator failures into a single
// human-readable message. Missing required fields keep the blunt historical
// wording; everything else names the offending field.
func respondValidationError(w http.ResponseWriter, err error) {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var details []string
	for _, fe := range ve {
		if fe.Tag() == "required" {
			respondWithError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		details = append(details, formatValidationError(fe))
	}

	respondWithError(w, http.StatusBadRequest, strings.Join(details, "; "))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	field := toJSONFieldName(fe.Field())
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
