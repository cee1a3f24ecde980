package healthsdk

import (
	"context"
	"net/http"
	"strconv"
)

// CreateProgram registers a program.
func (c *SDKClient) CreateProgram(ctx context.Context, name string) (*Program, error) {
	resp, err := c.doAPIRequest(ctx, http.MethodPost, "/programs", CreateProgramRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var program Program
	if err := decodeJSON(resp, &program, http.StatusCreated); err != nil {
		return nil, err
	}
	return &program, nil
}

// ListPrograms returns every program.
func (c *SDKClient) ListPrograms(ctx context.Context) ([]Program, error) {
	resp, err := c.doAPIRequest(ctx, http.MethodGet, "/programs", nil)
	if err != nil {
		return nil, err
	}

	var programs []Program
	if err := decodeJSON(resp, &programs, http.StatusOK); err != nil {
		return nil, err
	}
	return programs, nil
}

// DeleteProgram removes a program and its enrollments.
func (c *SDKClient) DeleteProgram(ctx context.Context, id int64) error {
	resp, err := c.doAPIRequest(ctx, http.MethodDelete, "/programs/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
