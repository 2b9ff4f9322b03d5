package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// The normalized column carries roster identity. roster_seeds records which
// categories were seeded so later edits are not undone on restart.
const schema = `
CREATE TABLE IF NOT EXISTS roster_members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category TEXT NOT NULL,
    name TEXT NOT NULL,
    normalized TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS roster_seeds (
    category TEXT PRIMARY KEY,
    seeded_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS reports (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    taken_on TEXT NOT NULL,
    body TEXT NOT NULL,
    present INTEGER NOT NULL,
    absent INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS report_unmatched (
    report_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    entry TEXT NOT NULL,
    PRIMARY KEY (report_id, position),
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_roster_members_identity ON roster_members(category, normalized);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
