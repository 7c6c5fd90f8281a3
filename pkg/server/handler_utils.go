package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/finnews/finner/pkg/models"
)

const contentTypeJSON = "application/json"

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(data)
}

// requireJSON fails unless the request has no Content-Type or a JSON one.
func requireJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != contentTypeJSON {
		return fmt.Errorf("unsupported content type %q, expected %s", ct, contentTypeJSON)
	}
	return nil
}

// statusForError maps an error from the extractor or dataset to a status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrBackendUnavailable), errors.Is(err, models.ErrDatasetUnavailable):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// renderError renders a JSON error response.
func renderError(w http.ResponseWriter, err error, status int) {
	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(models.APIError{Error: err.Error()}); encErr != nil {
		log.Errorf("Failed to write error response: %s", encErr)
	}
}
