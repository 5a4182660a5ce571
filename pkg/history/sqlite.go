package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the current history schema version.
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id                   TEXT PRIMARY KEY,
	project_name         TEXT NOT NULL,
	jurisdiction         TEXT NOT NULL,
	evaluated_at         TIMESTAMP NOT NULL,
	rule_count           INTEGER NOT NULL,
	practice_count       INTEGER NOT NULL,
	total_estimated_cost REAL NOT NULL,
	output_json          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluations_evaluated_at ON evaluations(evaluated_at);
CREATE INDEX IF NOT EXISTS idx_evaluations_project_name ON evaluations(project_name);

CREATE TABLE IF NOT EXISTS schema_version (
	version    INTEGER PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteConfig configures the SQLite history backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns caps open connections (default: 5).
	MaxOpenConns int

	// WALMode enables write-ahead logging (default: true).
	WALMode bool

	// BusyTimeout is how long to wait on a locked database
	// (default: 5s).
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/history.db",
		MaxOpenConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStore implements Store on SQLite.
type SQLiteStore struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the history database at the
// configured path and applies the schema.
func NewSQLiteStore(config *SQLiteConfig, logger *slog.Logger) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "history.sqlite")

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)

	s := &SQLiteStore{db: db, config: config, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("history store initialized", "path", config.Path, "wal_mode", config.WALMode)
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return fmt.Errorf("enabling WAL mode: %w", err)
		}
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", s.config.BusyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, record *EvaluationRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations (
			id, project_name, jurisdiction, evaluated_at,
			rule_count, practice_count, total_estimated_cost, output_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.ProjectName, record.Jurisdiction, record.EvaluatedAt.UTC(),
		record.RuleCount, record.PracticeCount, record.TotalEstimatedCost, record.OutputJSON,
	)
	if err != nil {
		return fmt.Errorf("saving evaluation record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*EvaluationRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, project_name, jurisdiction, evaluated_at,
		       rule_count, practice_count, total_estimated_cost, output_json
		FROM evaluations WHERE id = ?`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading evaluation record: %w", err)
	}
	return record, nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*EvaluationRecord, error) {
	query := `
		SELECT id, project_name, jurisdiction, evaluated_at,
		       rule_count, practice_count, total_estimated_cost, output_json
		FROM evaluations ORDER BY evaluated_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing evaluation records: %w", err)
	}
	defer rows.Close()

	var records []*EvaluationRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning evaluation record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM evaluations WHERE evaluated_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning evaluation records: %w", err)
	}
	return result.RowsAffected()
}

func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM evaluations").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting evaluation records: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*EvaluationRecord, error) {
	var r EvaluationRecord
	err := row.Scan(
		&r.ID, &r.ProjectName, &r.Jurisdiction, &r.EvaluatedAt,
		&r.RuleCount, &r.PracticeCount, &r.TotalEstimatedCost, &r.OutputJSON,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
