package models

import (
	"strings"
	"time"
)

// FileType is the extension of a resource download, or "external".
type FileType string

// Known file types. The API sends them with a leading dot.
const (
	FileTypeJar      FileType = ".jar"
	FileTypeZip      FileType = ".zip"
	FileTypeSkript   FileType = ".sk"
	FileTypeExternal FileType = "external"
)

// Normalize returns t with a leading dot for extension types, so that
// "jar" and ".jar" compare equal.
func (t FileType) Normalize() FileType {
	if t == "" || t == FileTypeExternal || strings.HasPrefix(string(t), ".") {
		return t
	}
	return "." + t
}

// Known reports whether t is one of the documented file types.
func (t FileType) Known() bool {
	switch t.Normalize() {
	case FileTypeJar, FileTypeZip, FileTypeSkript, FileTypeExternal:
		return true
	}
	return false
}

// ResourceFile describes the downloadable file of a resource.
type ResourceFile struct {
	Type        FileType `json:"type,omitempty"`
	Size        float64  `json:"size,omitempty"`
	SizeUnit    string   `json:"sizeUnit,omitempty"` // KB, MB, GB
	URL         string   `json:"url,omitempty"`      // Relative URL to the file
	ExternalURL string   `json:"externalUrl,omitempty"`
}

// ResourceRating is an aggregate rating.
type ResourceRating struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Resource is a plugin, skript or other file hosted on SpigotMC.
//
// Reviews, Versions and Updates are only present when the resource was
// requested directly (resources/{id}); list endpoints leave them nil.
// Price and Currency are only present for premium resources.
type Resource struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name,omitempty"`
	Tag            string              `json:"tag,omitempty"`
	Contributors   string              `json:"contributors,omitempty"`
	Likes          int                 `json:"likes,omitempty"`
	File           *ResourceFile       `json:"file,omitempty"`
	TestedVersions []string            `json:"testedVersions,omitempty"`
	Links          map[string]string   `json:"links,omitempty"`
	Rating         *ResourceRating     `json:"rating,omitempty"`
	ReleaseDate    int64               `json:"releaseDate,omitempty"`
	UpdateDate     int64               `json:"updateDate,omitempty"`
	Downloads      int                 `json:"downloads,omitempty"`
	External       bool                `json:"external,omitempty"`
	Icon           *Icon               `json:"icon,omitempty"`
	Premium        bool                `json:"premium,omitempty"`
	Price          *float64            `json:"price,omitempty"`
	Currency       string              `json:"currency,omitempty"`
	Author         *IdReference        `json:"author,omitempty"`
	Category       *IdReference        `json:"category,omitempty"`
	Version        *IdAndUUIDReference `json:"version,omitempty"`
	Reviews        []IdReference       `json:"reviews,omitempty"`
	Versions       []IdReference       `json:"versions,omitempty"`
	Updates        []IdReference       `json:"updates,omitempty"`
	Description    Base64Encoded       `json:"description,omitempty"`   // Description HTML
	Documentation  Base64Encoded       `json:"documentation,omitempty"` // Documentation tab HTML
	SourceCodeLink string              `json:"sourceCodeLink,omitempty"`
	DonationLink   string              `json:"donationLink,omitempty"`
}

// Released returns the release timestamp.
func (r Resource) Released() time.Time { return unixTime(r.ReleaseDate) }

// Updated returns the last update timestamp.
func (r Resource) Updated() time.Time { return unixTime(r.UpdateDate) }

// unixTime converts API timestamps (Unix seconds). Zero stays the zero Time.
func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
