// Package bfclient provides the primary entry point for constructing a
// Brandfolder v4 API client that implements the brandfolder.Client interface.
//
// It layers configuration, HTTP transport, and bearer authentication on top
// of the resource interfaces and types defined in the brandfolder package.
// Most applications should import bfclient to build a client, then use the
// returned brandfolder.Client to access resource-specific clients, for
// example Brandfolders(), Assets(), Labels(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/orientier/brandfolder-go/pkg/bfclient"
//	  "github.com/orientier/brandfolder-go/pkg/brandfolder"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: an API key against the production endpoint.
//	  cli, err := bfclient.NewWithAPIKey("bf-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = bfclient.New(&brandfolder.Config{
//	    APIKey:      "bf-api-key",
//	    APIEndpoint: "https://brandfolder.example.com/api/v4",
//	    PageSize:    50,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the brandfolder.Client interface
//	  assets, err := cli.Assets().ListAllForBrandfolder(ctx, "bf-key",
//	    brandfolder.NewQueryParams().WithInclude("custom_fields"))
//	  if err != nil { log.Fatal(err) }
//	  _ = assets
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithEndpoint that wrap New with the appropriate configuration.
package bfclient
