package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
)

// ProgramsHandler handles the health program endpoints.
type ProgramsHandler struct {
	ProgramService *service.ProgramService
}

// HandleCreate handles POST /programs
//
//	@Summary		Create Program
//	@Description	Registers a new health program. Names are unique.
//	@Tags			Programs
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			request	body		healthsdk.CreateProgramRequest	true	"Program to create"
//	@Success		201		{object}	healthsdk.Program
//	@Failure		400		{object}	healthsdk.ErrorResponse	"name missing or body malformed"
//	@Failure		401		{object}	healthsdk.ErrorResponse
//	@Failure		409		{object}	healthsdk.ErrorResponse	"program already exists"
//	@Failure		429		{object}	healthsdk.ErrorResponse
//	@Router			/api/programs [post].
func (h *ProgramsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req healthsdk.CreateProgramRequest
	if err := decodeJSON(w, r, &req, service.ErrProgramNameRequired); err != nil {
		writeError(w, r, err)
		return
	}

	program, err := h.ProgramService.CreateProgram(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, healthsdk.Program{
		ID:   program.ID,
		Name: program.Name,
	})
}

// HandleList handles GET /programs
//
//	@Summary		List Programs
//	@Description	Returns every program in creation order.
//	@Tags			Programs
//	@Produce		json
//	@Security		APIKeyAuth
//	@Success		200	{array}		healthsdk.Program
//	@Failure		401	{object}	healthsdk.ErrorResponse
//	@Failure		429	{object}	healthsdk.ErrorResponse
//	@Router			/api/programs [get].
func (h *ProgramsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	programs, err := h.ProgramService.ListPrograms(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKPrograms(programs))
}

// HandleDelete handles DELETE /programs/{id}
//
//	@Summary		Delete Program
//	@Description	Deletes a program. Clients enrolled in it are unenrolled.
//	@Tags			Programs
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id	path		int	true	"Program ID"
//	@Success		200	{object}	healthsdk.MessageResponse
//	@Failure		401	{object}	healthsdk.ErrorResponse
//	@Failure		404	{object}	healthsdk.ErrorResponse
//	@Failure		429	{object}	healthsdk.ErrorResponse
//	@Router			/api/programs/{id} [delete].
func (h *ProgramsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrProgramNotFound)
		return
	}

	if err := h.ProgramService.DeleteProgram(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, healthsdk.MessageResponse{Message: "Program deleted"})
}
