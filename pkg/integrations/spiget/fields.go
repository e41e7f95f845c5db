package spiget

import (
	apierr "github.com/matzehuels/spiget/pkg/errors"
)

// AuthorSearchField is the author field a search query is matched against.
// The zero value leaves the choice to the API.
type AuthorSearchField string

const AuthorFieldName AuthorSearchField = "name"

// Validate rejects fields the API does not accept.
func (f AuthorSearchField) Validate() error {
	switch f {
	case "", AuthorFieldName:
		return nil
	}
	return apierr.New(apierr.ErrCodeInvalidField, "invalid author search field %q (want name)", string(f))
}

// ResourceSearchField is the resource field a search query is matched against.
// The zero value leaves the choice to the API.
type ResourceSearchField string

const (
	ResourceFieldName ResourceSearchField = "name"
	ResourceFieldTag  ResourceSearchField = "tag"
)

// Validate rejects fields the API does not accept.
func (f ResourceSearchField) Validate() error {
	switch f {
	case "", ResourceFieldName, ResourceFieldTag:
		return nil
	}
	return apierr.New(apierr.ErrCodeInvalidField, "invalid resource search field %q (want name or tag)", string(f))
}

// ForVersionsMethod selects whether a resource must be tested with any or
// all of the requested game versions.
type ForVersionsMethod string

const (
	MethodAny ForVersionsMethod = "any"
	MethodAll ForVersionsMethod = "all"
)

// Validate rejects methods the API does not accept.
func (m ForVersionsMethod) Validate() error {
	switch m {
	case "", MethodAny, MethodAll:
		return nil
	}
	return apierr.New(apierr.ErrCodeInvalidField, "invalid method %q (want any or all)", string(m))
}

// optional turns the zero value of a string enum into an absent query value.
func optional[S ~string](s S) any {
	if s == "" {
		return nil
	}
	return string(s)
}
