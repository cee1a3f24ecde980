package http

import (
	"net/http"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
)

// EnrollHandler enrolls an existing client in programs by name.
type EnrollHandler struct {
	ClientService *service.ClientService
}

// ServeHTTP handles POST /enroll
//
//	@Summary		Enroll Client
//	@Description	Enrolls the client with the given email in the named programs. Unknown names are ignored and existing enrollments are kept.
//	@Tags			Enrollment
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			request	body		healthsdk.EnrollRequest	true	"Client email and program names"
//	@Success		200		{object}	healthsdk.EnrollResponse
//	@Failure		400		{object}	healthsdk.ErrorResponse	"email missing"
//	@Failure		401		{object}	healthsdk.ErrorResponse
//	@Failure		404		{object}	healthsdk.ErrorResponse	"no client with that email"
//	@Failure		429		{object}	healthsdk.ErrorResponse
//	@Router			/api/enroll [post].
func (h *EnrollHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req healthsdk.EnrollRequest
	if err := decodeJSON(w, r, &req, service.ErrEmailRequired); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.ClientService.EnrollByEmail(r.Context(), req.Email, req.Programs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, healthsdk.EnrollResponse{
		Message:  "Client enrolled",
		Programs: toSDKPrograms(client.Programs),
	})
}
