package audit

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Log is the append-only activity sink. Transactions report here after
// they commit; a write failure is logged and dropped, never propagated
// back into the transaction.
type Log struct {
	DB *sqlx.DB
}

func Open(dsn string) (*Log, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Log{DB: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS activities(
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  actor_id INTEGER NOT NULL,
  item_id INTEGER NOT NULL DEFAULT 0,
  amount INTEGER NOT NULL DEFAULT 0,
  success INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities(created_at);
CREATE INDEX IF NOT EXISTS idx_activities_actor ON activities(actor_id);
`
	_, err := db.Exec(schema)
	return err
}

type Activity struct {
	ID        string `db:"id"`
	Kind      string `db:"kind"`
	ActorID   int    `db:"actor_id"`
	ItemID    int    `db:"item_id"`
	Amount    int    `db:"amount"`
	Success   bool   `db:"success"`
	CreatedAt string `db:"created_at"`
}

// Record appends one activity row. Best-effort.
func (l *Log) Record(kind string, actorID, itemID, amount int, success bool) {
	_, err := l.DB.Exec(`
		INSERT INTO activities(id, kind, actor_id, item_id, amount, success)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), kind, actorID, itemID, amount, success)
	if err != nil {
		log.Printf("[audit] record %s: %v", kind, err)
	}
}

// Recent returns the newest activities, newest first. Ordering is by
// insertion (rowid), since created_at only has second resolution.
func (l *Log) Recent(limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []Activity
	err := l.DB.Select(&rows, `
		SELECT id, kind, actor_id, item_id, amount, success, created_at
		FROM activities
		ORDER BY rowid DESC
		LIMIT ?
	`, limit)
	return rows, err
}
