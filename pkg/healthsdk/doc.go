/*
Package healthsdk provides a client SDK for the health information service.

# Overview

SDKClient wraps the service's JSON API. Resource calls send the configured
API key in the X-API-KEY header and target routes under /api. Health probes
are sent without credentials.

	client := healthsdk.NewSDKClient("http://localhost:8080", "my-api-key")

	tb, err := client.CreateProgram(ctx, "TB")

	jane, err := client.CreateClient(ctx, healthsdk.CreateClientRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Programs: []int64{tb.ID},
	})

	enrolled, err := client.Enroll(ctx, "jane@example.com", "HIV", "Malaria")

	matches, err := client.SearchClients(ctx, "doe")

# Error Handling

Non-2xx responses are returned as *APIError carrying the status code and the
service's error code and message. Helpers cover the common cases:

	_, err := client.CreateProgram(ctx, "TB")
	switch {
	case healthsdk.IsConflict(err):
		// program already exists
	case healthsdk.IsRateLimited(err):
		// back off and retry later
	case err != nil:
		return err
	}

# Server Types

The request and response types in this package are the same ones the
service's HTTP handlers encode and decode, so they double as the API's
schema. APIError.WriteError is used by the handlers to write failures.
*/
package healthsdk
