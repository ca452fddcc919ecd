package models

import (
	"strings"

	"github.com/feldhop/the-album-club-app/internal/shared"
)

// Artist is a stored artist row. Created lazily the first time a drop
// references the artist name; never updated or deleted.
type Artist struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	DeezerID int64  `json:"deezer_id"`
}

// Album is a stored album row. One row is created per drop, so the same
// title may appear more than once.
type Album struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	DeezerID int64  `json:"deezer_id"`
	CoverURL string `json:"cover_url"`
	ArtistID int64  `json:"artist"`
}

// User is a stored user row. Provisioned outside the HTTP surface; the API
// only reads them.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Drop is an append-only event linking one user, one artist and one album at
// a point in time. Date is epoch milliseconds.
type Drop struct {
	ID       int64 `json:"id"`
	ArtistID int64 `json:"artist"`
	AlbumID  int64 `json:"album"`
	Date     int64 `json:"date"`
	UserID   int64 `json:"user"`
}

// DropView is the flattened four-way join of a drop with its user, album and
// artist rows, the shape the feed endpoints return. DropDate is a short
// locale date string derived from the stored epoch-milliseconds value.
type DropView struct {
	DropID        int64  `json:"drop_id"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
	AlbumName     string `json:"album_name"`
	ArtistName    string `json:"artist_name"`
	DropDate      string `json:"drop_date"`
	CoverURL      string `json:"cover_url"`
	UserEmail     string `json:"user_email"`
}

// DropParams carries the validated inputs for creating a drop.
type DropParams struct {
	ArtistName     string
	ArtistDeezerID int64
	AlbumTitle     string
	AlbumDeezerID  int64
	AlbumCoverURL  string
	UserID         int64
}

// Validate checks the drop parameters and returns a [shared.ValidationError]
// for the first field that fails.
func (p DropParams) Validate() error {
	if strings.TrimSpace(p.ArtistName) == "" {
		return &shared.ValidationError{Field: "artistName", Message: "must not be empty"}
	}
	if p.ArtistDeezerID <= 0 {
		return &shared.ValidationError{Field: "artistId", Message: "must be a positive integer"}
	}
	if strings.TrimSpace(p.AlbumTitle) == "" {
		return &shared.ValidationError{Field: "albumTitle", Message: "must not be empty"}
	}
	if p.AlbumDeezerID <= 0 {
		return &shared.ValidationError{Field: "albumId", Message: "must be a positive integer"}
	}
	if strings.TrimSpace(p.AlbumCoverURL) == "" {
		return &shared.ValidationError{Field: "albumCover", Message: "must not be empty"}
	}
	if p.UserID <= 0 {
		return &shared.ValidationError{Field: "userId", Message: "must be a positive integer"}
	}
	return nil
}
