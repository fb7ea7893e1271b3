package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout is fixed width so opened_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Recent is one entry in the recently opened list.
type Recent struct {
	ID            int64     `json:"id" yaml:"id"`
	VideoPath     string    `json:"video_path" yaml:"video_path"`
	Title         string    `json:"title" yaml:"title"`
	URL           string    `json:"url,omitempty" yaml:"url,omitempty"`
	PrimaryPath   string    `json:"primary_path,omitempty" yaml:"primary_path,omitempty"`
	SecondaryPath string    `json:"secondary_path,omitempty" yaml:"secondary_path,omitempty"`
	OpenedAt      time.Time `json:"opened_at" yaml:"opened_at"`
}

const recentColumns = "id, video_path, title, url, primary_path, secondary_path, opened_at"

// AddRecent records that a video was opened. An existing entry for the same
// path is updated and moves to the top; the list is then trimmed to the
// configured limit.
func (s *Store) AddRecent(ctx context.Context, entry Recent) (*Recent, error) {
	videoPath := strings.TrimSpace(entry.VideoPath)
	if videoPath == "" {
		return nil, errors.New("add recent: video path is required")
	}
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = inferTitleFromPath(videoPath)
	}
	opened := s.now().UTC()

	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recent_videos (video_path, title, url, primary_path, secondary_path, opened_at)
             VALUES (?, ?, ?, ?, ?, ?)
             ON CONFLICT(video_path) DO UPDATE SET
                title = excluded.title,
                url = excluded.url,
                primary_path = excluded.primary_path,
                secondary_path = excluded.secondary_path,
                opened_at = excluded.opened_at`,
			videoPath,
			title,
			nullableString(entry.URL),
			nullableString(entry.PrimaryPath),
			nullableString(entry.SecondaryPath),
			opened.Format(timestampLayout),
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM recent_videos WHERE id NOT IN (
                SELECT id FROM recent_videos ORDER BY opened_at DESC, id DESC LIMIT ?
             )`,
			s.limit,
		); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, fmt.Errorf("add recent: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+recentColumns+` FROM recent_videos WHERE video_path = ?`, videoPath)
	stored, err := scanRecent(row)
	if err != nil {
		return nil, fmt.Errorf("read recent: %w", err)
	}
	return stored, nil
}

// ListRecent returns recent videos, most recently opened first.
func (s *Store) ListRecent(ctx context.Context) ([]Recent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recentColumns+` FROM recent_videos ORDER BY opened_at DESC, id DESC LIMIT ?`, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	defer rows.Close()

	var out []Recent
	for rows.Next() {
		entry, err := scanRecent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		out = append(out, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent: %w", err)
	}
	return out, nil
}

// RemoveRecent deletes the entry for videoPath and reports whether one existed.
func (s *Store) RemoveRecent(ctx context.Context, videoPath string) (bool, error) {
	var affected int64
	err := retryOnBusy(ctx, func() error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM recent_videos WHERE video_path = ?`, strings.TrimSpace(videoPath))
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("remove recent: %w", err)
	}
	return affected > 0, nil
}

// ClearRecent removes every entry and returns how many were deleted.
func (s *Store) ClearRecent(ctx context.Context) (int64, error) {
	var affected int64
	err := retryOnBusy(ctx, func() error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM recent_videos`)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("clear recent: %w", err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecent(row rowScanner) (*Recent, error) {
	var (
		entry                   Recent
		url, primary, secondary sql.NullString
		openedAt                string
	)
	if err := row.Scan(&entry.ID, &entry.VideoPath, &entry.Title, &url, &primary, &secondary, &openedAt); err != nil {
		return nil, err
	}
	entry.URL = url.String
	entry.PrimaryPath = primary.String
	entry.SecondaryPath = secondary.String
	if ts, err := time.Parse(timestampLayout, openedAt); err == nil {
		entry.OpenedAt = ts
	}
	return &entry, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func inferTitleFromPath(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	base = strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if base == "" || base == "." {
		return "Untitled"
	}
	return base
}
