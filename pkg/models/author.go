package models

import "encoding/json"

// Author is a SpigotMC member who published or reviewed a resource.
type Author struct {
	ID         int               `json:"id"`
	Name       string            `json:"name,omitempty"`
	Icon       *Icon             `json:"icon,omitempty"`
	Identities map[string]string `json:"identities,omitempty"` // Social identities, author details only
}

// ResourceAuthor is the author as embedded in reviews.
// Fetch and ShouldDelete are undocumented upstream and passed through as-is.
type ResourceAuthor struct {
	ID           int             `json:"id"`
	Name         string          `json:"name,omitempty"`
	Icon         *Icon           `json:"icon,omitempty"`
	Fetch        json.RawMessage `json:"fetch,omitempty"`
	ShouldDelete json.RawMessage `json:"shouldDelete,omitempty"`
}

// Category is a resource category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}
