package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planora/internal/model"
)

func (r *repository) CreateCustomer(ctx context.Context, c *model.Customer) (int64, error) {
	query := `
		INSERT INTO customers (type, first_name, last_name, name,
		                       company_identification_number, contact_first_name,
		                       contact_last_name, contact_email, address, email,
		                       phone_number, media_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		c.Type, c.FirstName, c.LastName, c.Name,
		c.CompanyIdentificationNumber, c.ContactFirstName,
		c.ContactLastName, c.ContactEmail, c.Address, c.Email,
		c.PhoneNumber, c.MediaID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert customer: %w", err)
	}
	return id, nil
}

func (r *repository) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
		SELECT id, type, first_name, last_name, name,
		       company_identification_number, contact_first_name,
		       contact_last_name, contact_email, address, email,
		       phone_number, media_id, created_at, updated_at
		FROM customers WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var c model.Customer
	if err := row.Scan(
		&c.ID, &c.Type, &c.FirstName, &c.LastName, &c.Name,
		&c.CompanyIdentificationNumber, &c.ContactFirstName,
		&c.ContactLastName, &c.ContactEmail, &c.Address, &c.Email,
		&c.PhoneNumber, &c.MediaID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

func (r *repository) ListCustomers(ctx context.Context, q PageQuery) ([]model.Customer, int, error) {
	q = q.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, first_name, last_name, name,
		       company_identification_number, contact_first_name,
		       contact_last_name, contact_email, address, email,
		       phone_number, media_id, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, q.Limit(), q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.Type, &c.FirstName, &c.LastName, &c.Name,
			&c.CompanyIdentificationNumber, &c.ContactFirstName,
			&c.ContactLastName, &c.ContactEmail, &c.Address, &c.Email,
			&c.PhoneNumber, &c.MediaID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, total, rows.Err()
}

// UpdateCustomer never touches the type column: the customer kind is
// immutable after creation.
func (r *repository) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, name = $3,
		    company_identification_number = $4, contact_first_name = $5,
		    contact_last_name = $6, contact_email = $7, address = $8,
		    email = $9, phone_number = $10, media_id = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING id
	`
	var id int64
	if err := r.db.Master.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.Name,
		c.CompanyIdentificationNumber, c.ContactFirstName,
		c.ContactLastName, c.ContactEmail, c.Address,
		c.Email, c.PhoneNumber, c.MediaID, c.ID,
	).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *repository) DeleteCustomer(ctx context.Context, id int64) error {
	var inUse int
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM events WHERE customer_id = $1
	`, id).Scan(&inUse); err != nil {
		return fmt.Errorf("failed to check customer references: %w", err)
	}
	if inUse > 0 {
		return ErrCustomerInUse
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
