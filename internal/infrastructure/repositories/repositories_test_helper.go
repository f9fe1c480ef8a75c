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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createMemberTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		name_en TEXT,
		role TEXT NOT NULL,
		department TEXT,
		email TEXT,
		phone TEXT,
		bio TEXT,
		avatar TEXT,
		gradient_from TEXT,
		gradient_to TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE skills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id TEXT NOT NULL,
		skill_name TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE social_links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		UNIQUE (member_id, platform)
	);`)
}

func createAdminSettingTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE admin_settings (
		setting_key TEXT PRIMARY KEY,
		setting_value TEXT NOT NULL,
		updated_at DATETIME
	);`)
}
