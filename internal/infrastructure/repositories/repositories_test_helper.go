package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createClubTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE clubs (
		id TEXT PRIMARY KEY,
		is_active BOOLEAN NOT NULL DEFAULT true,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		short_description TEXT,
		description TEXT,
		logo_file_id TEXT,
		type TEXT NOT NULL,
		leader_innohassle_id TEXT,
		links TEXT,
		sport_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		innohassle_id TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'default',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
