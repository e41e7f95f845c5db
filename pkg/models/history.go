package models

import "time"

// ResourceReview is a review left on a resource.
type ResourceReview struct {
	ID              int             `json:"id,omitempty"`
	Author          *ResourceAuthor `json:"author,omitempty"`
	Rating          *ResourceRating `json:"rating,omitempty"`
	Message         Base64Encoded   `json:"message,omitempty"`
	ResponseMessage Base64Encoded   `json:"responseMessage,omitempty"` // Reply of the resource author
	Version         string          `json:"version,omitempty"`         // Version name the review was posted for
	Date            int64           `json:"date,omitempty"`
	Resource        int             `json:"resource,omitempty"`
}

// Posted returns the review timestamp.
func (r ResourceReview) Posted() time.Time { return unixTime(r.Date) }

// ResourceUpdate is an update post of a resource.
type ResourceUpdate struct {
	ID          int           `json:"id"`
	Resource    int           `json:"resource,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description Base64Encoded `json:"description,omitempty"`
	Date        int64         `json:"date,omitempty"`
	Likes       int           `json:"likes,omitempty"`
}

// Posted returns the update timestamp.
func (u ResourceUpdate) Posted() time.Time { return unixTime(u.Date) }

// ResourceVersion is one released version of a resource.
type ResourceVersion struct {
	ID          int             `json:"id"`
	UUID        string          `json:"uuid,omitempty"`
	Name        string          `json:"name,omitempty"` // e.g. v1.0
	ReleaseDate int64           `json:"releaseDate,omitempty"`
	Downloads   int             `json:"downloads,omitempty"`
	Rating      *ResourceRating `json:"rating,omitempty"`
	Resource    int             `json:"resource,omitempty"`
}

// Released returns the release timestamp.
func (v ResourceVersion) Released() time.Time { return unixTime(v.ReleaseDate) }

// Ref returns the version as an IdAndUUIDReference.
func (v ResourceVersion) Ref() IdAndUUIDReference {
	return IdAndUUIDReference{ID: v.ID, UUID: v.UUID}
}
