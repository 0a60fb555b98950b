package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planora/internal/model"
)

func (r *repository) CreateEvent(ctx context.Context, e *model.Event) (int64, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	query := `
		INSERT INTO events (registration_number, name, location, description, media_id,
		                    status, start_time, end_time, customer_id, event_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err = tx.QueryRowContext(ctx, query,
		e.RegistrationNumber, e.Name, e.Location, e.Description, e.MediaID,
		e.Status, e.StartTime, e.EndTime, e.CustomerID, e.EventTypeID,
	).Scan(&id)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}

	for _, orgID := range e.OrganizerIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO event_organizers (event_id, organizer_id) VALUES ($1, $2)
		`, id, orgID); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to link organizer %d: %w", orgID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

func (r *repository) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `
		SELECT id, registration_number, name, location, description, media_id,
		       status, start_time, end_time, customer_id, event_type_id,
		       created_at, updated_at
		FROM events WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var e model.Event
	if err := row.Scan(
		&e.ID, &e.RegistrationNumber, &e.Name, &e.Location, &e.Description, &e.MediaID,
		&e.Status, &e.StartTime, &e.EndTime, &e.CustomerID, &e.EventTypeID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, ErrEventNotFound
	}

	orgIDs, err := r.organizerIDsForEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	e.OrganizerIDs = orgIDs

	return &e, nil
}

func (r *repository) organizerIDsForEvent(ctx context.Context, eventID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT organizer_id FROM event_organizers WHERE event_id = $1 ORDER BY organizer_id
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event organizers: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan organizer id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repository) ListEvents(ctx context.Context, q PageQuery, status string) ([]EventListRow, int, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if status != "" {
		where = "WHERE e.status = $1"
		args = append(args, status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events e %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.registration_number, e.name, e.location, e.description, e.media_id,
		       e.status, e.start_time, e.end_time, e.customer_id, e.event_type_id,
		       e.created_at, e.updated_at,
		       CASE WHEN c.type = 'Legal' THEN c.name
		            ELSE c.first_name || ' ' || c.last_name END AS customer_name,
		       t.label
		FROM events e
		JOIN customers c ON c.id = e.customer_id
		JOIN event_types t ON t.id = e.event_type_id
		%s
		ORDER BY e.start_time DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, q.Limit(), q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var items []EventListRow
	for rows.Next() {
		var row EventListRow
		if err := rows.Scan(
			&row.ID, &row.RegistrationNumber, &row.Name, &row.Location, &row.Description,
			&row.MediaID, &row.Status, &row.StartTime, &row.EndTime, &row.CustomerID,
			&row.EventTypeID, &row.CreatedAt, &row.UpdatedAt,
			&row.CustomerName, &row.EventTypeLabel,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		items = append(items, row)
	}

	return items, total, rows.Err()
}

func (r *repository) UpdateEvent(ctx context.Context, e *model.Event) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	query := `
		UPDATE events
		SET name = $1, location = $2, description = $3, media_id = $4,
		    start_time = $5, end_time = $6, customer_id = $7, event_type_id = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING id
	`

	var id int64
	if err := tx.QueryRowContext(ctx, query,
		e.Name, e.Location, e.Description, e.MediaID,
		e.StartTime, e.EndTime, e.CustomerID, e.EventTypeID, e.ID,
	).Scan(&id); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to update event: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_organizers WHERE event_id = $1`, e.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear organizer links: %w", err)
	}
	for _, orgID := range e.OrganizerIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO event_organizers (event_id, organizer_id) VALUES ($1, $2)
		`, e.ID, orgID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to link organizer %d: %w", orgID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *repository) DeleteEvent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// SetEventStatus applies the requested status without re-checking the
// advisory UI guards: the transition was requested explicitly and the
// server performs it as asked.
func (r *repository) SetEventStatus(ctx context.Context, id int64, status model.EventStatus) error {
	query := `
		UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id
	`
	var got int64
	if err := r.db.Master.QueryRowContext(ctx, query, status, id).Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to set event status: %w", err)
	}
	return nil
}

// AdvanceEventPhase moves an event along its time-based lifecycle.
// A suspended event does not advance; the transition is re-derived when
// it is reactivated. Returns the resulting status and whether a change
// was applied.
func (r *repository) AdvanceEventPhase(ctx context.Context, id int64, phase string) (model.EventStatus, bool, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var current model.EventStatus
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM events WHERE id = $1 FOR UPDATE
	`, id).Scan(&current)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, ErrEventNotFound
		}
		return "", false, fmt.Errorf("failed to select event for phase advance: %w", err)
	}

	var next model.EventStatus
	switch {
	case phase == "start" && current == model.StatusNotStarted:
		next = model.StatusInProgress
	case phase == "end" && (current == model.StatusNotStarted || current == model.StatusInProgress):
		next = model.StatusFinished
	default:
		_ = tx.Rollback()
		return current, false, nil
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2
	`, next, id); err != nil {
		_ = tx.Rollback()
		return "", false, fmt.Errorf("failed to advance event phase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("failed to commit phase transaction: %w", err)
	}
	return next, true, nil
}
