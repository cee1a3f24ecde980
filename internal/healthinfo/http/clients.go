package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
)

// ClientsHandler handles all client endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleCreate handles POST /clients
//
//	@Summary		Register Client
//	@Description	Registers a client and enrolls them in the listed program ids. Unknown ids are ignored.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			request	body		healthsdk.CreateClientRequest	true	"Client to register"
//	@Success		201		{object}	healthsdk.Client
//	@Failure		400		{object}	healthsdk.ErrorResponse	"name or email missing"
//	@Failure		401		{object}	healthsdk.ErrorResponse
//	@Failure		409		{object}	healthsdk.ErrorResponse	"email already registered"
//	@Failure		429		{object}	healthsdk.ErrorResponse
//	@Router			/api/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req healthsdk.CreateClientRequest
	if err := decodeJSON(w, r, &req, service.ErrClientFieldsRequired); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.ClientService.CreateClient(r.Context(), req.Name, req.Email, req.Programs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKClient(client))
}

// HandleList handles GET /clients
//
//	@Summary		List Clients
//	@Description	Returns every client with the programs they are enrolled in.
//	@Tags			Clients
//	@Produce		json
//	@Security		APIKeyAuth
//	@Success		200	{array}		healthsdk.Client
//	@Failure		401	{object}	healthsdk.ErrorResponse
//	@Failure		429	{object}	healthsdk.ErrorResponse
//	@Router			/api/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKClients(clients))
}

// HandleSearch handles GET /clients/search
//
//	@Summary		Search Clients
//	@Description	Case-insensitive substring match on name or email. An empty query returns every client.
//	@Tags			Clients
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			query	query		string	false	"Text to look for"
//	@Success		200		{array}		healthsdk.Client
//	@Failure		401		{object}	healthsdk.ErrorResponse
//	@Failure		429		{object}	healthsdk.ErrorResponse
//	@Router			/api/clients/search [get].
func (h *ClientsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.SearchClients(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKClients(clients))
}

// HandleProfile handles GET /clients/{id}
//
//	@Summary		View Client Profile
//	@Description	Returns a client's name, email and the names of their programs.
//	@Tags			Clients
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id	path		int	true	"Client ID"
//	@Success		200	{object}	healthsdk.ClientProfile
//	@Failure		401	{object}	healthsdk.ErrorResponse
//	@Failure		404	{object}	healthsdk.ErrorResponse
//	@Failure		429	{object}	healthsdk.ErrorResponse
//	@Router			/api/clients/{id} [get].
func (h *ClientsHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrClientNotFound)
		return
	}

	client, err := h.ClientService.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, healthsdk.ClientProfile{
		Name:     client.Name,
		Email:    client.Email,
		Programs: client.ProgramNames(),
	})
}

// HandleDelete handles DELETE /clients/{id}
//
//	@Summary		Delete Client
//	@Description	Deletes a client and their enrollments.
//	@Tags			Clients
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			id	path		int	true	"Client ID"
//	@Success		200	{object}	healthsdk.MessageResponse
//	@Failure		401	{object}	healthsdk.ErrorResponse
//	@Failure		404	{object}	healthsdk.ErrorResponse
//	@Failure		429	{object}	healthsdk.ErrorResponse
//	@Router			/api/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrClientNotFound)
		return
	}

	if err := h.ClientService.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, healthsdk.MessageResponse{Message: "Client deleted"})
}
