package sink

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"
)

var tableRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLite appends records to a table of (seq, record) rows, the record
// serialized as JSON text.
type SQLite struct {
	db     *sql.DB
	insert *sql.Stmt
}

func NewSQLite(path, table string) (*SQLite, error) {
	if !tableRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (seq INTEGER PRIMARY KEY AUTOINCREMENT, record TEXT NOT NULL)", table)
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, err
	}
	insert, err := db.Prepare(fmt.Sprintf("INSERT INTO %s (record) VALUES (?)", table))
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, insert: insert}, nil
}

func (s *SQLite) Write(record map[string]any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = s.insert.Exec(string(b))
	return err
}

func (s *SQLite) Close() error {
	s.insert.Close()
	return s.db.Close()
}
