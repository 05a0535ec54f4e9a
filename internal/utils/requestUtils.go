package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	SendJSONErrorWithFields(w, message, nil, statusCode)
}

// SendJSONErrorWithFields adds per-field messages to the error body.
func SendJSONErrorWithFields(w http.ResponseWriter, message string, fields map[string]string, statusCode int) {
	RespondWithJSON(w, statusCode, ErrorResponse{Message: message, Errors: fields})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error marshalling JSON response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// GetIntIDFromVars extracts and parses a positive integer id from mux.Vars.
func GetIntIDFromVars(w http.ResponseWriter, r *http.Request, paramName string) (int64, error) {
	idStr := mux.Vars(r)[paramName]
	if idStr == "" {
		SendJSONError(w, "Missing ID parameter", http.StatusBadRequest)
		return 0, errors.New("missing ID parameter")
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		SendJSONError(w, "Invalid ID format", http.StatusBadRequest)
		return 0, fmt.Errorf("invalid ID format %q", idStr)
	}
	return id, nil
}

// DecodeJSONBody decodes the request body into dst. An empty body is only
// accepted when allowEmpty is set. Type mismatches name the offending field.
func DecodeJSONBody(r *http.Request, dst interface{}, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		if allowEmpty {
			return nil
		}
		return errors.New("request body must not be empty")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return fmt.Errorf("%s: must be of type %s", field, typeErr.Type.Kind())
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("malformed JSON")
	default:
		return err
	}
}
