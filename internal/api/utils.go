package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/FACorreiaa/go-starwars-favorites/internal/types"
)

// ErrorResponse writes the {"msg": ...} envelope with the given status.
func ErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	MessageResponse(w, r, status, message)
}

// MessageResponse writes {"msg": ...}; deletes use it on success too.
func MessageResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSONResponse(w, r, status, types.MessageResponse{Msg: message})
}

// DataResponse writes the {"data": ...} envelope with the given status.
func DataResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	WriteJSONResponse(w, r, status, types.DataResponse{Data: data})
}

// WriteJSONResponse encodes the data to JSON and writes the response header and body.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	js, err := json.Marshal(data)
	if err != nil {
		reqID := middleware.GetReqID(r.Context())
		slog.ErrorContext(r.Context(), "Failed to marshal JSON response",
			slog.Any("error", err),
			slog.String("request_id", reqID),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		reqID := middleware.GetReqID(r.Context())
		slog.ErrorContext(r.Context(), "Failed to write response body",
			slog.Any("error", err),
			slog.String("request_id", reqID),
		)
	}
}

// ServiceErrorResponse maps a service error onto the envelope. Validation,
// not-found and conflict failures are all client errors (400); the messages
// for the last two are supplied by the caller so they name the entity.
func ServiceErrorResponse(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, conflictMsg string) {
	var vErr *types.ValidationError
	switch {
	case errors.As(err, &vErr):
		ErrorResponse(w, r, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, types.ErrNotFound):
		ErrorResponse(w, r, http.StatusBadRequest, notFoundMsg)
	case errors.Is(err, types.ErrConflict):
		ErrorResponse(w, r, http.StatusBadRequest, conflictMsg)
	default:
		ErrorResponse(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// ParseIDParam reads a positive integer URL parameter.
func ParseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, types.NewValidationError(fmt.Sprintf("%s must be a positive integer, got %q", name, raw))
	}
	return id, nil
}

// DecodeJSONBody reads and decodes a JSON request body safely.
// Every failure is returned as a *types.ValidationError.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return types.NewValidationError(fmt.Sprintf("body contains badly-formed JSON (at character %d)", syntaxError.Offset))

		case errors.Is(err, io.ErrUnexpectedEOF):
			return types.NewValidationError("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return types.NewValidationError(fmt.Sprintf("body contains incorrect JSON type for field %q (wanted %s)", unmarshalTypeError.Field, unmarshalTypeError.Type))
			}
			return types.NewValidationError(fmt.Sprintf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset))

		case errors.Is(err, io.EOF):
			return types.NewValidationError("body must not be empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			fieldName = strings.Trim(fieldName, `"`)
			return types.NewValidationError(fmt.Sprintf("body contains unknown key %q", fieldName))

		case errors.As(err, &maxBytesError):
			return types.NewValidationError(fmt.Sprintf("body must not be larger than %d bytes", maxBytesError.Limit))

		case errors.As(err, &invalidUnmarshalError):
			panic(fmt.Errorf("developer error: invalid argument passed to json.Unmarshal: %w", err))

		default:
			return types.NewValidationError(fmt.Sprintf("error decoding JSON body: %v", err))
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return types.NewValidationError("body must only contain a single JSON value")
	}

	return nil
}
