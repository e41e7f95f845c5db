// Package integrations provides the HTTP plumbing of the Spiget API client.
//
// # Overview
//
// The [Client] type issues GET requests against the API base URL
// (https://api.spiget.org/v2/ by default) with an identifying User-Agent
// and memoizes every response for the lifetime of the Client. The typed
// endpoint methods live in the [spiget] subpackage; this package only
// knows about paths, query strings and raw responses.
//
//	client := integrations.NewClient()
//	resp, err := client.Fetch(ctx, "resources/9089", integrations.DefaultRequestOptions)
//
// # Caching
//
// Two tiers sit in front of the network:
//
//  1. An in-process memo keyed by (path, options). A hit returns the same
//     *Response pointer. Entries are never evicted; use [Client.Forget] or
//     [Client.Reset] to drop them.
//  2. An optional [cache.Cache] backend (file or Redis) storing serialized
//     responses with a TTL, shared across processes. A backend hit is
//     promoted into the memo.
//
// Concurrent calls for the same key share one request. Requests that do
// reach the network can be paced with [WithRateLimit]; cached responses are
// not counted.
//
// # Errors
//
// Transport errors are returned exactly as net/http produced them.
// Responses with a non-2xx status are returned without error; use
// [Response.Err] or [DecodeResponse] to turn them into an *errors.Error.
//
// [spiget]: github.com/matzehuels/spiget/pkg/integrations/spiget
// [cache.Cache]: github.com/matzehuels/spiget/pkg/cache.Cache
package integrations
