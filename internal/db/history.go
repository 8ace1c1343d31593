package db

import (
	"context"
	"fmt"
	"time"
)

// Entry is one recorded processing run.
type Entry struct {
	ID            int64
	ChatID        int64
	Title         string
	InputLines    int
	OutputLines   int
	MaxLineLength int
	ProcessedAt   time.Time
}

// AddEntry records a processing run.
func (s *Store) AddEntry(ctx context.Context, entry Entry) error {
	query := `INSERT INTO history (chat_id, title, input_lines, output_lines, max_line_length, processed_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.database.ExecContext(ctx, query,
		entry.ChatID,
		entry.Title,
		entry.InputLines,
		entry.OutputLines,
		entry.MaxLineLength,
		entry.ProcessedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// Recent returns the latest processing runs for a chat, newest first.
func (s *Store) Recent(ctx context.Context, chatID int64, limit int) ([]Entry, error) {
	query := `SELECT id, chat_id, title, input_lines, output_lines, max_line_length, processed_at
		FROM history WHERE chat_id = ? ORDER BY id DESC LIMIT ?`
	rows, err := s.database.QueryContext(ctx, query, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var processedAt string
		if err := rows.Scan(&entry.ID, &entry.ChatID, &entry.Title, &entry.InputLines,
			&entry.OutputLines, &entry.MaxLineLength, &processedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339, processedAt); err == nil {
			entry.ProcessedAt = parsed
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return entries, nil
}
