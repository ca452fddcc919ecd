package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/feldhop/the-album-club-app/internal/models"
	"github.com/feldhop/the-album-club-app/internal/shared"
)

func dropParams(userID int64) models.DropParams {
	return models.DropParams{
		ArtistName:     "Daft Punk",
		ArtistDeezerID: 5,
		AlbumTitle:     "Discovery",
		AlbumDeezerID:  100,
		AlbumCoverURL:  "http://x/cover.jpg",
		UserID:         userID,
	}
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}

func TestDropRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateDrop", func(t *testing.T) {
		t.Run("Creates Artist Album And Drop", func(t *testing.T) {
			db := setupTestDB(t)
			userID := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")

			repo := NewDropRepository(db)
			dropID, err := repo.CreateDrop(ctx, dropParams(userID))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if dropID == 0 {
				t.Error("expected a drop id")
			}

			if got := countRows(t, db, "artists"); got != 1 {
				t.Errorf("expected 1 artist row, got %d", got)
			}
			if got := countRows(t, db, "albums"); got != 1 {
				t.Errorf("expected 1 album row, got %d", got)
			}

			artist, ok, err := repo.GetArtistByName(ctx, "Daft Punk")
			if err != nil || !ok {
				t.Fatalf("expected artist row, got ok=%v err=%v", ok, err)
			}
			if artist.DeezerID != 5 {
				t.Errorf("expected deezer id 5, got %d", artist.DeezerID)
			}
		})

		t.Run("Find Or Create Is Idempotent Per Artist Name", func(t *testing.T) {
			db := setupTestDB(t)
			userID := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")

			repo := NewDropRepository(db)
			for i := 0; i < 2; i++ {
				if _, err := repo.CreateDrop(ctx, dropParams(userID)); err != nil {
					t.Fatalf("drop %d failed: %v", i, err)
				}
			}

			if got := countRows(t, db, "artists"); got != 1 {
				t.Errorf("expected a single artist row, got %d", got)
			}
		})

		t.Run("Albums Are Not De-Duplicated", func(t *testing.T) {
			db := setupTestDB(t)
			userID := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")

			repo := NewDropRepository(db)
			for i := 0; i < 2; i++ {
				if _, err := repo.CreateDrop(ctx, dropParams(userID)); err != nil {
					t.Fatalf("drop %d failed: %v", i, err)
				}
			}

			if got := countRows(t, db, "albums"); got != 2 {
				t.Errorf("expected two distinct album rows, got %d", got)
			}
		})

		t.Run("Rejects Invalid Params", func(t *testing.T) {
			db := setupTestDB(t)

			params := dropParams(1)
			params.ArtistName = "  "

			_, err := NewDropRepository(db).CreateDrop(ctx, params)

			var validationErr *shared.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
			if got := countRows(t, db, "artists"); got != 0 {
				t.Errorf("expected no artist rows after rejection, got %d", got)
			}
		})

		t.Run("Rolls Back On Missing User", func(t *testing.T) {
			db := setupTestDB(t)

			_, err := NewDropRepository(db).CreateDrop(ctx, dropParams(42))
			if err == nil {
				t.Fatal("expected foreign key failure for missing user")
			}

			// nothing may survive the rollback
			if got := countRows(t, db, "artists"); got != 0 {
				t.Errorf("expected no orphaned artist rows, got %d", got)
			}
			if got := countRows(t, db, "albums"); got != 0 {
				t.Errorf("expected no orphaned album rows, got %d", got)
			}
		})
	})

	t.Run("ListDrops", func(t *testing.T) {
		t.Run("Empty Feed", func(t *testing.T) {
			db := setupTestDB(t)

			drops, err := NewDropRepository(db).ListDrops(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(drops) != 0 {
				t.Errorf("expected empty feed, got %d drops", len(drops))
			}
		})

		t.Run("Ordered By Date Descending", func(t *testing.T) {
			db := setupTestDB(t)
			userID := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")

			repo := NewDropRepository(db)
			clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			repo.SetClock(func() time.Time { return clock })

			titles := []string{"Homework", "Discovery", "Random Access Memories"}
			for _, title := range titles {
				params := dropParams(userID)
				params.AlbumTitle = title
				if _, err := repo.CreateDrop(ctx, params); err != nil {
					t.Fatalf("failed to create drop: %v", err)
				}
				clock = clock.Add(24 * time.Hour)
			}

			drops, err := repo.ListDrops(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(drops) != 3 {
				t.Fatalf("expected 3 drops, got %d", len(drops))
			}

			if drops[0].AlbumName != "Random Access Memories" || drops[2].AlbumName != "Homework" {
				t.Errorf("expected newest first, got %s ... %s", drops[0].AlbumName, drops[2].AlbumName)
			}
			if drops[0].DropDate != "1/3/2024" {
				t.Errorf("expected formatted date '1/3/2024', got %s", drops[0].DropDate)
			}
		})

		t.Run("Flattened Projection", func(t *testing.T) {
			db := setupTestDB(t)
			userID := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")

			repo := NewDropRepository(db)
			if _, err := repo.CreateDrop(ctx, dropParams(userID)); err != nil {
				t.Fatalf("failed to create drop: %v", err)
			}

			drops, err := repo.ListDrops(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			drop := drops[0]
			if drop.UserFirstName != "Ada" || drop.UserLastName != "Lovelace" {
				t.Errorf("unexpected user fields: %+v", drop)
			}
			if drop.UserEmail != "ada@example.com" {
				t.Errorf("expected user email, got %s", drop.UserEmail)
			}
			if drop.ArtistName != "Daft Punk" || drop.AlbumName != "Discovery" {
				t.Errorf("unexpected artist/album fields: %+v", drop)
			}
			if drop.CoverURL != "http://x/cover.jpg" {
				t.Errorf("expected cover URL, got %s", drop.CoverURL)
			}
		})
	})

	t.Run("LatestDrop", func(t *testing.T) {
		t.Run("Empty Feed", func(t *testing.T) {
			db := setupTestDB(t)

			_, ok, err := NewDropRepository(db).LatestDrop(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if ok {
				t.Error("expected ok=false with no drops")
			}
		})

		t.Run("Returns Newest", func(t *testing.T) {
			db := setupTestDB(t)
			userID := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")

			repo := NewDropRepository(db)
			clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			repo.SetClock(func() time.Time { return clock })

			if _, err := repo.CreateDrop(ctx, dropParams(userID)); err != nil {
				t.Fatalf("failed to create drop: %v", err)
			}

			clock = clock.Add(time.Hour)
			params := dropParams(userID)
			params.AlbumTitle = "Human After All"
			newestID, err := repo.CreateDrop(ctx, params)
			if err != nil {
				t.Fatalf("failed to create drop: %v", err)
			}

			drop, ok, err := repo.LatestDrop(ctx)
			if err != nil || !ok {
				t.Fatalf("expected latest drop, got ok=%v err=%v", ok, err)
			}
			if drop.DropID != newestID {
				t.Errorf("expected drop id %d, got %d", newestID, drop.DropID)
			}
			if drop.AlbumName != "Human After All" {
				t.Errorf("expected newest album, got %s", drop.AlbumName)
			}
		})
	})
}
