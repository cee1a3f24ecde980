package healthsdk

import (
	"net/http"
	"strings"
	"time"
)

// APIPrefix is the path prefix the SDK uses for resource routes.
const APIPrefix = "/api"

// SDKClient is a client for the health information service. Every resource
// call carries the configured API key in the X-API-KEY header.
type SDKClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL, apiKey string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithAPIKey returns a copy of the client that sends a different key.
func (c *SDKClient) WithAPIKey(apiKey string) *SDKClient {
	cp := *c
	cp.APIKey = apiKey
	return &cp
}
