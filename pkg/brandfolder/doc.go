// Package brandfolder provides types, interfaces, and helpers for working
// with the Brandfolder v4 API.
//
// # Overview
//
// The brandfolder package defines the generic resource envelope (Resource,
// Page, Relationship) and the interfaces for resource-oriented clients
// (e.g., AssetsClient, LabelsClient). A concrete implementation of these
// clients is provided by the bfclient package, which wires configuration,
// transport, and authentication. Most consumers should import bfclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := bfclient.NewWithAPIKey("bf-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of a brandfolder's assets
//	  assets, err := cli.Assets().ListForBrandfolder(ctx, "bf-key",
//	    brandfolder.NewQueryParams().WithPer(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = assets
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (page, per, search, order,
// include, filters). List operations return one Page; ListAll variants walk
// meta.next_page until the listing is complete and return one merged Page.
// Aggregation is all-or-nothing: a failure on any page aborts with an error
// rather than returning a partial result. When the page cap is reached the
// merged Page has Truncated set. The package also provides an iterator and
// a streaming channel:
//
//	it := brandfolder.NewPageIterator(ctx, lister, "/brandfolders", nil)
//	for it.HasNext() {
//	  resource, err := it.Next()
//	  if err != nil { break }
//	  _ = resource
//	}
//
// # Normalization
//
// Pages fetched with side-loaded data (the include parameter) are
// normalized: relationship references are resolved against the included
// index, custom field values collapse into a name-keyed map on each entity,
// and attachments are ordered by position. See Page.Normalize.
//
// # Errors
//
// API errors are represented by APIError and ResponseError. Helpers such as
// IsNotFound, IsUnauthorized, and IsForbidden make it easy to branch on
// common cases.
//
// # Caching
//
// A pluggable Cache abstraction (in-memory or NATS JetStream key-value)
// backs custom field key lookups, so repeated name-to-ID resolutions do not
// refetch the key listing.
package brandfolder
