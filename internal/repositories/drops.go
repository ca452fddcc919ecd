package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/feldhop/the-album-club-app/internal/models"
	"github.com/feldhop/the-album-club-app/internal/shared"
)

// dropViewQuery is the flattened four-way join the feed endpoints project,
// ordered by drop date descending.
const dropViewQuery = `
	SELECT
		drops.id AS drop_id,
		users.first_name AS user_first_name,
		users.last_name AS user_last_name,
		albums.name AS album_name,
		artists.name AS artist_name,
		drops.date AS drop_date,
		albums.cover_url AS cover_url,
		users.email AS user_email
	FROM drops
	INNER JOIN users ON drops.user = users.id
	INNER JOIN albums ON drops.album = albums.id
	INNER JOIN artists ON albums.artist = artists.id
	ORDER BY drops.date DESC
`

// DropRepository persists drops and their side-effect artist and album rows.
//
// Artist rows are find-or-create keyed on name; album rows are created once
// per drop with no de-duplication; drop rows are append-only.
type DropRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewDropRepository creates a new DropRepository with the given database connection
func NewDropRepository(db *sql.DB) *DropRepository {
	return &DropRepository{db: db, now: time.Now}
}

// SetClock overrides the timestamp source. Tests use it to create drops with
// controlled dates.
func (r *DropRepository) SetClock(now func() time.Time) {
	r.now = now
}

// CreateDrop records a drop: find-or-create the artist by name, insert the
// album, insert the drop, all inside one transaction. Returns the new drop id.
//
// The unique constraint on artists.name makes the find-or-create race-safe:
// a concurrent insert of the same name surfaces as a constraint violation and
// the winner's row is re-read.
func (r *DropRepository) CreateDrop(ctx context.Context, params models.DropParams) (int64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	artistID, err := r.findOrCreateArtist(ctx, tx, params.ArtistName, params.ArtistDeezerID)
	if err != nil {
		return 0, err
	}

	albumID, err := ExecuteWrite(ctx, tx,
		"INSERT INTO albums (name, deezer_id, cover_url, artist) VALUES (?, ?, ?, ?)",
		params.AlbumTitle, params.AlbumDeezerID, params.AlbumCoverURL, artistID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert album: %w", err)
	}

	dropID, err := ExecuteWrite(ctx, tx,
		"INSERT INTO drops (artist, album, date, user) VALUES (?, ?, ?, ?)",
		artistID, albumID, shared.EpochMillis(r.now()), params.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert drop: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit drop: %w", err)
	}

	return dropID, nil
}

// findOrCreateArtist looks the artist up by exact name and inserts it if
// absent, re-reading on a unique constraint violation.
func (r *DropRepository) findOrCreateArtist(ctx context.Context, q Querier, name string, deezerID int64) (int64, error) {
	lookup := func() (int64, bool, error) {
		return FetchOne(ctx, q, "SELECT id FROM artists WHERE name = ?", scanID, name)
	}

	id, ok, err := lookup()
	if err != nil {
		return 0, fmt.Errorf("failed to look up artist: %w", err)
	}
	if ok {
		return id, nil
	}

	id, err = ExecuteWrite(ctx, q, "INSERT INTO artists (name, deezer_id) VALUES (?, ?)", name, deezerID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			if id, ok, err = lookup(); err == nil && ok {
				return id, nil
			}
		}
		return 0, fmt.Errorf("failed to insert artist: %w", err)
	}

	return id, nil
}

// ListDrops returns the full flattened feed, newest first.
func (r *DropRepository) ListDrops(ctx context.Context) ([]models.DropView, error) {
	drops, err := FetchAll(ctx, r.db, dropViewQuery, scanDropView)
	if err != nil {
		return nil, fmt.Errorf("failed to list drops: %w", err)
	}
	return drops, nil
}

// LatestDrop returns only the newest drop. ok is false when no drops exist.
func (r *DropRepository) LatestDrop(ctx context.Context) (models.DropView, bool, error) {
	drop, ok, err := FetchOne(ctx, r.db, dropViewQuery+" LIMIT 1", scanDropView)
	if err != nil {
		return models.DropView{}, false, fmt.Errorf("failed to fetch latest drop: %w", err)
	}
	return drop, ok, nil
}

// GetArtistByName returns the stored artist row for an exact name match.
func (r *DropRepository) GetArtistByName(ctx context.Context, name string) (models.Artist, bool, error) {
	return FetchOne(ctx, r.db,
		"SELECT id, name, deezer_id FROM artists WHERE name = ?",
		func(row RowScanner) (models.Artist, error) {
			var a models.Artist
			err := row.Scan(&a.ID, &a.Name, &a.DeezerID)
			return a, err
		}, name)
}

func scanID(row RowScanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

// scanDropView scans one row of the flattened join, converting the stored
// epoch-milliseconds date into the locale date string clients expect.
func scanDropView(row RowScanner) (models.DropView, error) {
	var (
		view   models.DropView
		millis int64
	)

	err := row.Scan(
		&view.DropID,
		&view.UserFirstName,
		&view.UserLastName,
		&view.AlbumName,
		&view.ArtistName,
		&millis,
		&view.CoverURL,
		&view.UserEmail,
	)
	if err != nil {
		return view, err
	}

	view.DropDate = shared.FormatDropDate(millis)
	return view, nil
}
