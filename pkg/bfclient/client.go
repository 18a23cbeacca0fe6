// Package bfclient provides the main entry point for creating Brandfolder API clients
package bfclient

import (
	"fmt"
	"strings"

	"github.com/orientier/brandfolder-go/internal/client"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// New creates a new Brandfolder API client from config.
func New(config *brandfolder.Config) (brandfolder.Client, error) {
	if config == nil {
		return nil, brandfolder.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, brandfolder.ErrAPIKeyRequired
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithAPIKey creates a new client against the production endpoint.
func NewWithAPIKey(apiKey string) (brandfolder.Client, error) {
	return New(&brandfolder.Config{
		APIKey: apiKey,
	})
}

// NewWithEndpoint creates a new client against a custom endpoint.
func NewWithEndpoint(apiKey, endpoint string) (brandfolder.Client, error) {
	return New(&brandfolder.Config{
		APIKey:      apiKey,
		APIEndpoint: endpoint,
	})
}
