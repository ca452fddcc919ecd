package shared

import (
	"database/sql"
	"testing"
)

func newMigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	ConfigureDatabase(db, 1, 1)

	if err := RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count)
	if err != nil {
		t.Fatalf("failed to check table %s: %v", name, err)
	}
	return count > 0
}

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		db := newMigratedDB(t)
		defer db.Close()

		for _, table := range []string{"artists", "albums", "users", "drops", "schema_migrations"} {
			if !tableExists(t, db, table) {
				t.Errorf("expected table %s to exist", table)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		db := newMigratedDB(t)
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("re-running migrations should be a no-op: %v", err)
		}

		var applied int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
			t.Fatalf("failed to count migrations: %v", err)
		}
		if applied != 1 {
			t.Errorf("expected 1 applied migration, got %d", applied)
		}
	})

	t.Run("Rollback", func(t *testing.T) {
		db := newMigratedDB(t)
		defer db.Close()

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}

		if tableExists(t, db, "drops") {
			t.Error("expected drops table to be dropped")
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error when nothing left to rollback")
		}
	})

	t.Run("Artist Name Unique", func(t *testing.T) {
		db := newMigratedDB(t)
		defer db.Close()

		if _, err := db.Exec("INSERT INTO artists (name, deezer_id) VALUES ('Daft Punk', 5)"); err != nil {
			t.Fatalf("failed to insert artist: %v", err)
		}

		if _, err := db.Exec("INSERT INTO artists (name, deezer_id) VALUES ('Daft Punk', 6)"); err == nil {
			t.Error("expected unique constraint violation on artist name")
		}
	})

	t.Run("Drop Requires Existing Rows", func(t *testing.T) {
		db := newMigratedDB(t)
		defer db.Close()

		_, err := db.Exec("INSERT INTO drops (artist, album, date, user) VALUES (1, 1, 0, 1)")
		if err == nil {
			t.Error("expected foreign key violation for dangling references")
		}
	})
}
