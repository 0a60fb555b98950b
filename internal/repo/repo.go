package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"

	"planora/internal/model"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrMediaNotFound     = errors.New("media not found")
	ErrCustomerInUse     = errors.New("customer still referenced by events")
)

// PageQuery normalizes list pagination. PageSize is capped so the
// "fetch everything" reference collections stay bounded.
type PageQuery struct {
	Page     int
	PageSize int
}

const maxPageSize = 1000

func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

func (q PageQuery) Limit() int  { return q.PageSize }
func (q PageQuery) Offset() int { return (q.Page - 1) * q.PageSize }

// EventListRow is an event joined with the display strings the list
// endpoint denormalizes into each row.
type EventListRow struct {
	model.Event
	CustomerName   string
	EventTypeLabel string
}

type Repository interface {
	CreateEvent(ctx context.Context, e *model.Event) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
	ListEvents(ctx context.Context, q PageQuery, status string) ([]EventListRow, int, error)
	UpdateEvent(ctx context.Context, e *model.Event) error
	DeleteEvent(ctx context.Context, id int64) error
	SetEventStatus(ctx context.Context, id int64, status model.EventStatus) error
	AdvanceEventPhase(ctx context.Context, id int64, phase string) (model.EventStatus, bool, error)

	CreateCustomer(ctx context.Context, c *model.Customer) (int64, error)
	GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context, q PageQuery) ([]model.Customer, int, error)
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	CreateOrganizer(ctx context.Context, o *model.Organizer) (int64, error)
	GetOrganizerByID(ctx context.Context, id int64) (*model.Organizer, error)
	ListOrganizers(ctx context.Context, q PageQuery) ([]model.Organizer, int, error)
	UpdateOrganizer(ctx context.Context, o *model.Organizer) error
	DeleteOrganizer(ctx context.Context, id int64) error
	SetOrganizerStatus(ctx context.Context, id int64, status string) error

	ListEventTypes(ctx context.Context) ([]model.EventType, error)
	GetEventTypeByID(ctx context.Context, id int64) (*model.EventType, error)
	CreateEventType(ctx context.Context, label string) (int64, error)

	CreateMedia(ctx context.Context, m *model.Media) error
	GetMediaByID(ctx context.Context, id string) (*model.Media, error)
	ListMediaByEvent(ctx context.Context, eventID int64) ([]model.Media, error)

	MigrateUp(migrationsDir string) error
	MigrateDown(migrationsDir string) error
}

type repository struct {
	db  *dbpg.DB
	log *zerolog.Logger
}

func NewRepository(db *dbpg.DB, log *zerolog.Logger) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if err := db.Master.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &repository{db: db, log: log}, nil
}

func (r *repository) MigrateUp(migrationsDir string) error {
	return r.applyMigrations(migrationsDir, "*.up.sql")
}

func (r *repository) MigrateDown(migrationsDir string) error {
	return r.applyMigrations(migrationsDir, "*.down.sql")
}

func (r *repository) applyMigrations(migrationsDir, pattern string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, pattern))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations applied from %s (%s)", migrationsDir, pattern)
	return nil
}
