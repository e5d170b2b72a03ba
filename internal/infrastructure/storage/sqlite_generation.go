package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/domain/repository"
)

type sqliteGenerationRepository struct {
	db *sql.DB
}

// NewSQLiteGenerationRepository SQLite asosidagi generatsiya tarixi.
// Generator ishchi papkani o'zgartiradi, shuning uchun yo'l absolyutga aylantiriladi.
func NewSQLiteGenerationRepository(dbPath string) (repository.GenerationRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	absPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("db yo'lini aniqlab bo'lmadi: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := sql.Open("sqlite3", absPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}

	if err := createGenerationSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteGenerationRepository{db: db}, nil
}

func createGenerationSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS generation_runs (
	id TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	row_count INTEGER NOT NULL,
	ts TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generation_runs_ts ON generation_runs (ts);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}

// SaveRun generatsiyani saqlash
func (s *sqliteGenerationRepository) SaveRun(ctx context.Context, run entity.GenerationRun) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO generation_runs (id, path, row_count, ts) VALUES (?, ?, ?, ?)`,
		run.ID, run.Path, run.Rows, run.CreatedAt)
	return err
}

// ListRuns so'nggi generatsiyalarni olish
func (s *sqliteGenerationRepository) ListRuns(ctx context.Context, limit int) ([]entity.GenerationRun, error) {
	query := `SELECT id, path, row_count, ts FROM generation_runs ORDER BY ts DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []entity.GenerationRun
	for rows.Next() {
		var run entity.GenerationRun
		var ts time.Time
		if err := rows.Scan(&run.ID, &run.Path, &run.Rows, &ts); err != nil {
			return nil, err
		}
		run.CreatedAt = ts
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Clear tarixni tozalash
func (s *sqliteGenerationRepository) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM generation_runs`)
	return err
}
