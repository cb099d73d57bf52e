package model

import "shorten-api/internal/domain/entity"

// CreateURLMappingDTO is the request body for shortening a plain URL.
type CreateURLMappingDTO struct {
	Username string `json:"username"`
	FullURL  string `json:"full_url"`
}

// ShortURLResponse carries the absolute short URL handed back to the client.
type ShortURLResponse struct {
	ShortURL string `json:"short_url"`
}

// RedirectKind tags the resolved target variant.
type RedirectKind string

const (
	RedirectURL  RedirectKind = "url"
	RedirectFile RedirectKind = "file"
)

// RedirectTarget is the outcome of resolving a short identifier: the location
// to redirect to and which variant produced it.
type RedirectTarget struct {
	Kind     RedirectKind `json:"kind"`
	Location string       `json:"location"`
}

// ShortMappingList is the listing response for one owner.
type ShortMappingList struct {
	URLs       []entity.ShortMapping `json:"urls"`
	TotalCount int                   `json:"total_count"`
}
