package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planora/internal/model"
)

func (r *repository) CreateOrganizer(ctx context.Context, o *model.Organizer) (int64, error) {
	query := `
		INSERT INTO organizers (first_name, last_name, email, phone, status, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		o.FirstName, o.LastName, o.Email, o.Phone, o.Status, o.Address,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert organizer: %w", err)
	}
	return id, nil
}

func (r *repository) GetOrganizerByID(ctx context.Context, id int64) (*model.Organizer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, status, address,
		       created_at, updated_at
		FROM organizers WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var o model.Organizer
	if err := row.Scan(
		&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Phone, &o.Status,
		&o.Address, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, ErrOrganizerNotFound
	}
	return &o, nil
}

func (r *repository) ListOrganizers(ctx context.Context, q PageQuery) ([]model.Organizer, int, error) {
	q = q.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count organizers: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, status, address,
		       created_at, updated_at
		FROM organizers
		ORDER BY last_name ASC, first_name ASC
		LIMIT $1 OFFSET $2
	`, q.Limit(), q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list organizers: %w", err)
	}
	defer rows.Close()

	var organizers []model.Organizer
	for rows.Next() {
		var o model.Organizer
		if err := rows.Scan(
			&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Phone, &o.Status,
			&o.Address, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan organizer: %w", err)
		}
		organizers = append(organizers, o)
	}

	return organizers, total, rows.Err()
}

func (r *repository) UpdateOrganizer(ctx context.Context, o *model.Organizer) error {
	query := `
		UPDATE organizers
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    address = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`
	var id int64
	if err := r.db.Master.QueryRowContext(ctx, query,
		o.FirstName, o.LastName, o.Email, o.Phone, o.Address, o.ID,
	).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrganizerNotFound
		}
		return fmt.Errorf("failed to update organizer: %w", err)
	}
	return nil
}

func (r *repository) DeleteOrganizer(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM organizers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete organizer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrganizerNotFound
	}
	return nil
}

func (r *repository) SetOrganizerStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE organizers SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id
	`
	var got int64
	if err := r.db.Master.QueryRowContext(ctx, query, status, id).Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrganizerNotFound
		}
		return fmt.Errorf("failed to set organizer status: %w", err)
	}
	return nil
}
