package healthsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateClient registers a client, optionally enrolling them by program id.
func (c *SDKClient) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	resp, err := c.doAPIRequest(ctx, http.MethodPost, "/clients", req)
	if err != nil {
		return nil, err
	}

	var client Client
	if err := decodeJSON(resp, &client, http.StatusCreated); err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients returns every client with their programs.
func (c *SDKClient) ListClients(ctx context.Context) ([]Client, error) {
	return c.getClients(ctx, "/clients")
}

// SearchClients returns clients whose name or email contains query.
func (c *SDKClient) SearchClients(ctx context.Context, query string) ([]Client, error) {
	return c.getClients(ctx, "/clients/search?query="+url.QueryEscape(query))
}

func (c *SDKClient) getClients(ctx context.Context, path string) ([]Client, error) {
	resp, err := c.doAPIRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClientProfile returns the profile of a single client.
func (c *SDKClient) GetClientProfile(ctx context.Context, id int64) (*ClientProfile, error) {
	resp, err := c.doAPIRequest(ctx, http.MethodGet, "/clients/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	var profile ClientProfile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteClient removes a client and their enrollments.
func (c *SDKClient) DeleteClient(ctx context.Context, id int64) error {
	resp, err := c.doAPIRequest(ctx, http.MethodDelete, "/clients/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// Enroll adds the named programs to the client with the given email.
func (c *SDKClient) Enroll(ctx context.Context, email string, programs ...string) (*EnrollResponse, error) {
	resp, err := c.doAPIRequest(ctx, http.MethodPost, "/enroll", EnrollRequest{
		Email:    email,
		Programs: programs,
	})
	if err != nil {
		return nil, err
	}

	var out EnrollResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
