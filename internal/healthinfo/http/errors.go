package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeJSON reads a single JSON value into dst and runs its validate tags.
// An empty body decodes as an empty object so that it fails validation rather
// than parsing. Returns healthsdk.ErrInvalidJSON for malformed input or
// trailing data, and invalid when a required field is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, invalid error) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		if !errors.Is(err, io.EOF) {
			return healthsdk.ErrInvalidJSON
		}
	} else if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return healthsdk.ErrInvalidJSON
	}
	if err := validate.Struct(dst); err != nil {
		slogx.FromContext(r.Context()).Debug("request validation failed", "error", err)
		return invalid
	}
	return nil
}

// writeError maps an error from the service layer onto the HTTP error body.
// Anything that is not a service error is logged and reported as a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *healthsdk.APIError
	if errors.As(err, &apiErr) {
		apiErr.WriteError(w)
		return
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpErr(http.StatusBadRequest, healthsdk.ErrorCodeInvalidRequest, svcErr.Message).WriteError(w)
			return
		case errors.Is(err, service.ErrConflict):
			httpErr(http.StatusConflict, healthsdk.ErrorCodeConflict, svcErr.Message).WriteError(w)
			return
		case errors.Is(err, service.ErrNotFound):
			httpErr(http.StatusNotFound, healthsdk.ErrorCodeNotFound, svcErr.Message).WriteError(w)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "error", err)
	healthsdk.ErrServerError.WriteError(w)
}

func httpErr(status int, code, message string) *healthsdk.APIError {
	return healthsdk.NewAPIError(status, code, message)
}
