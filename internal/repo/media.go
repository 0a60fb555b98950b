package repo

import (
	"context"
	"database/sql"
	"fmt"

	"planora/internal/model"
)

func (r *repository) CreateMedia(ctx context.Context, m *model.Media) error {
	var eventID sql.NullInt64
	if m.EventID != 0 {
		eventID = sql.NullInt64{Int64: m.EventID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO media (id, folder, file_name, content_type, size, event_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.Folder, m.FileName, m.ContentType, m.Size, eventID)
	if err != nil {
		return fmt.Errorf("failed to insert media: %w", err)
	}
	return nil
}

func (r *repository) GetMediaByID(ctx context.Context, id string) (*model.Media, error) {
	var m model.Media
	var eventID sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, folder, file_name, content_type, size, event_id, created_at
		FROM media WHERE id = $1
	`, id).Scan(&m.ID, &m.Folder, &m.FileName, &m.ContentType, &m.Size, &eventID, &m.CreatedAt)
	if err != nil {
		return nil, ErrMediaNotFound
	}
	m.EventID = eventID.Int64
	return &m, nil
}

func (r *repository) ListMediaByEvent(ctx context.Context, eventID int64) ([]model.Media, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, folder, file_name, content_type, size, event_id, created_at
		FROM media
		WHERE event_id = $1
		ORDER BY created_at DESC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event media: %w", err)
	}
	defer rows.Close()

	var items []model.Media
	for rows.Next() {
		var m model.Media
		var evID sql.NullInt64
		if err := rows.Scan(&m.ID, &m.Folder, &m.FileName, &m.ContentType, &m.Size, &evID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		m.EventID = evID.Int64
		items = append(items, m)
	}

	return items, rows.Err()
}
