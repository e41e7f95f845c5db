// Package spiget provides typed access to the Spiget REST API.
//
// # Overview
//
// [API] groups the endpoints into sections mirroring the API's own layout:
//
//   - [Authors]: authors, their resources and reviews
//   - [Categories]: resource categories
//   - [Resources]: resources, downloads, reviews, updates and versions
//   - [Search]: full-text search over resources and authors
//   - [Status]: API server status
//   - [Webhook]: webhook event names and delivery status
//
// Every section method builds a relative path plus query string, fetches
// it through an [integrations.Client] and decodes the JSON into types from
// the models package:
//
//	api := spiget.New(integrations.NewClient())
//	res, err := api.Resources.Details(ctx, 9089)
//	if err != nil {
//	    return err
//	}
//	desc, _ := res.Description.Decode()
//
// # Caching
//
// Responses are memoized by the client for its lifetime, so asking twice
// for the same path costs one request. Create a new client, or call
// [integrations.Client.Reset], to see fresh data.
//
// # Errors
//
// Input is validated before any request is sent. Responses outside the 2xx
// range are reported as *errors.Error with code NOT_FOUND, RATE_LIMITED or
// HTTP_STATUS; payloads that do not match the expected shape are reported
// with code DECODE_ERROR. Transport errors are returned unwrapped.
package spiget
