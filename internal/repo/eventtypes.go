package repo

import (
	"context"
	"fmt"

	"planora/internal/model"
)

func (r *repository) ListEventTypes(ctx context.Context) ([]model.EventType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label FROM event_types ORDER BY label ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list event types: %w", err)
	}
	defer rows.Close()

	var types []model.EventType
	for rows.Next() {
		var t model.EventType
		if err := rows.Scan(&t.ID, &t.Label); err != nil {
			return nil, fmt.Errorf("failed to scan event type: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

func (r *repository) GetEventTypeByID(ctx context.Context, id int64) (*model.EventType, error) {
	var t model.EventType
	err := r.db.QueryRowContext(ctx, `SELECT id, label FROM event_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Label)
	if err != nil {
		return nil, ErrEventTypeNotFound
	}
	return &t, nil
}

func (r *repository) CreateEventType(ctx context.Context, label string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO event_types (label) VALUES ($1) RETURNING id
	`, label).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert event type: %w", err)
	}
	return id, nil
}
