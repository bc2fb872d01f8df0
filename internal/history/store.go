package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry 是一条已提交命令的审计记录。它只用于回看，从不回灌到新会话。
type Entry struct {
	SessionID  string    `json:"session_id"`
	Seq        int       `json:"seq"`
	Command    string    `json:"command"`
	Output     string    `json:"output"`
	Navigation string    `json:"navigation,omitempty"`
	TS         time.Time `json:"ts"`
}

const schema = `
CREATE TABLE IF NOT EXISTS commands (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	seq         INTEGER NOT NULL,
	command     TEXT NOT NULL,
	output      TEXT NOT NULL,
	navigation  TEXT NOT NULL DEFAULT '',
	ts          INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS commands_session ON commands (session_id, seq);
`

type Store struct {
	Path string
	db   *sql.DB
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio", "history.db"), nil
}

// Open 打开（必要时创建）path 处的 SQLite 数据库并建表。
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// SQLite 只允许一个写者。
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{Path: path, db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append 写入一条记录；空白命令被忽略。
func (s *Store) Append(ctx context.Context, e Entry) error {
	if s == nil || s.db == nil {
		return errors.New("history store is not open")
	}
	if strings.TrimSpace(e.Command) == "" {
		return nil
	}
	if e.TS.IsZero() {
		e.TS = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO commands (session_id, seq, command, output, navigation, ts) VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Seq, e.Command, e.Output, e.Navigation, e.TS.UnixNano(),
	)
	return err
}

// List 按 seq 返回一个会话的全部记录。
func (s *Store) List(ctx context.Context, sessionID string) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history store is not open")
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, seq, command, output, navigation, ts FROM commands WHERE session_id = ? ORDER BY seq, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// Recent 返回全部会话中最近的 limit 条记录，新的在前。
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history store is not open")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, seq, command, output, navigation, ts FROM commands ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.SessionID, &e.Seq, &e.Command, &e.Output, &e.Navigation, &ts); err != nil {
			return nil, err
		}
		e.TS = time.Unix(0, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}
