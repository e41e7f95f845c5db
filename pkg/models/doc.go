// Package models defines the records returned by the Spiget API.
//
// # Overview
//
// Every type here is a plain value record that maps one JSON object of the
// API. Wire keys are camelCase (testedVersions, sizeUnit, releaseDate); the
// json struct tags are the single source of truth for that mapping, and
// [ToCamel]/[ToSnake] convert between the wire form and the snake_case names
// accepted by the CLI and by sort/fields query parameters.
//
// Unknown keys are ignored on decode. Missing keys leave the zero value:
// nested records and price are pointers and stay nil, scalars stay zero.
//
// # Base64 fields
//
// Large text fields (resource descriptions, review messages, update
// descriptions) arrive base64-encoded. They are kept as [Base64Encoded] and
// decoded only when asked:
//
//	text, err := resource.Description.Decode()
//
// Decode failures carry the DECODE_ERROR code from pkg/errors.
//
// # Lifetime
//
// Records are created by decoding one HTTP response and are owned by the
// caller. Nothing in this module mutates a record after decoding.
package models
