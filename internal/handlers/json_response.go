package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "kemisemail/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writePipelineError maps the pipeline error taxonomy onto HTTP statuses.
func writePipelineError(w http.ResponseWriter, err error) {
	var unsupported *appErrors.ErrUnsupportedFormat
	var unavailable *appErrors.ErrGenerationUnavailable
	var empty *appErrors.ErrEmptyResponse
	var submission *appErrors.ErrSubmissionFailed
	var imageTooLarge *appErrors.ErrImageTooLarge
	var templateTooLarge *appErrors.ErrTemplateTooLarge

	switch {
	case errors.As(err, &unsupported):
		writeJSONErrorResponse(w, http.StatusBadRequest, "unsupported_format", err.Error())
	case errors.As(err, &unavailable):
		writeJSONErrorResponse(w, http.StatusBadGateway, "generation_unavailable", err.Error())
	case errors.As(err, &empty):
		writeJSONErrorResponse(w, http.StatusBadGateway, "empty_response", err.Error())
	case errors.As(err, &submission):
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":    "submission_failed",
			"message":  err.Error(),
			"response": submission.Response,
		})
	case errors.As(err, &imageTooLarge):
		writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "image_too_large", err.Error())
	case errors.As(err, &templateTooLarge):
		writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "template_too_large", err.Error())
	default:
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}
