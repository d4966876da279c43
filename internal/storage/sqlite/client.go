package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/storage/models"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS report_history (
		id TEXT PRIMARY KEY,
		one_liner TEXT NOT NULL,
		wcag TEXT NOT NULL,
		url TEXT,
		provider TEXT,
		report TEXT,
		suggestion TEXT,
		screenshot_name TEXT,
		latency_ms INTEGER,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_report_created ON report_history(created_at);
	CREATE INDEX IF NOT EXISTS idx_report_wcag ON report_history(wcag);
	`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (c *Client) InsertReport(record *models.ReportRecord) error {
	_, err := c.db.Exec(
		`INSERT INTO report_history
		(id, one_liner, wcag, url, provider, report, suggestion, screenshot_name, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.OneLiner,
		record.WCAG,
		record.URL,
		record.Provider,
		record.Report,
		record.Suggestion,
		record.ScreenshotName,
		record.LatencyMS,
		record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

func (c *Client) ListReports(limit int) ([]models.ReportRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := c.db.Query(
		`SELECT id, one_liner, wcag, url, provider, report, suggestion, screenshot_name, latency_ms, created_at
		FROM report_history ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var records []models.ReportRecord
	for rows.Next() {
		var r models.ReportRecord
		var createdAt int64
		err := rows.Scan(
			&r.ID,
			&r.OneLiner,
			&r.WCAG,
			&r.URL,
			&r.Provider,
			&r.Report,
			&r.Suggestion,
			&r.ScreenshotName,
			&r.LatencyMS,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return records, nil
}
