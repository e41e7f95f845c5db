package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Icon is an author or resource icon.
//
// Info and Hash are sent by the API without documented meaning; they are
// kept verbatim so that re-encoding a record does not drop them.
type Icon struct {
	URL  string          `json:"url,omitempty"`  // Relative URL to the image
	Data Base64Encoded   `json:"data,omitempty"` // Base64 image data (binary, use Bytes)
	Info json.RawMessage `json:"info,omitempty"`
	Hash json.RawMessage `json:"hash,omitempty"`
}

// IdReference points at another entity by ID.
type IdReference struct {
	ID int `json:"id"`
}

// IdAndUUIDReference points at another entity by ID and, rarely, UUID.
type IdAndUUIDReference struct {
	ID   int    `json:"id"`
	UUID string `json:"uuid,omitempty"`
}

// ParseUUID parses the UUID. It returns uuid.Nil and no error when the API
// did not send one.
func (r IdAndUUIDReference) ParseUUID() (uuid.UUID, error) {
	if r.UUID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(r.UUID)
}

// IDs extracts the IDs of a reference list.
func IDs(refs []IdReference) []int {
	if refs == nil {
		return nil
	}
	ids := make([]int, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}
