// Package schemas holds the JSON Schemas for the payloads exchanged with the email variation service.
package schemas

import "embed"

// Schema file names.
const (
	LookupRequest  = "lookup_request.schema.json"
	LookupResponse = "lookup_response.schema.json"
	ErrorResponse  = "error_response.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
