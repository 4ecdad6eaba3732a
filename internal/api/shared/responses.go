package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/redact"
)

// MessageField is the envelope key for errors that are not tied to a field.
const MessageField = "message"

// ErrorResponse is the error envelope: field name to messages.
type ErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// DataResponse wraps a successful payload.
type DataResponse struct {
	Data any `json:"data"`
}

// ResponseOption customizes error response logging.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel logs a 4xx response at WARN instead of DEBUG. Used for
// authentication failures.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// MessageErrors builds an envelope map holding a single message.
func MessageErrors(message string) map[string][]string {
	return map[string][]string{MessageField: {message}}
}

// RespondWithJSON writes data as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			"error", redact.Error(err))
	}
}

// RespondWithData writes {"data": data}.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithErrors writes the error envelope.
func RespondWithErrors(w http.ResponseWriter, r *http.Request, status int, errs map[string][]string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Errors: errs})
}

// RespondWithError writes an envelope holding a single message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrors(w, r, status, MessageErrors(message))
}

// RespondWithErrorAndLog writes the envelope and logs err, redacted. The raw
// error never reaches the client.
//
// 5xx responses log at ERROR. 4xx responses log at DEBUG unless
// WithElevatedLogLevel is given.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errs map[string][]string,
	err error,
	opts ...ResponseOption,
) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	var o responseOptions
	for _, opt := range opts {
		opt(&o)
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case o.elevateLogLevel && status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Errors: errs})
}
