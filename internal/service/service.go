package service

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"planora/internal/cache"
	"planora/internal/media"
	"planora/internal/repo"
)

type Service interface {
	CreateEvent(ctx *ginext.Context)
	UpdateEvent(ctx *ginext.Context)
	DeleteEvent(ctx *ginext.Context)
	GetEvent(ctx *ginext.Context)
	ListEvents(ctx *ginext.Context)
	SuspendEvent(ctx *ginext.Context)
	UnsuspendEvent(ctx *ginext.Context)
	EventGallery(ctx *ginext.Context)

	CreateCustomer(ctx *ginext.Context)
	UpdateCustomer(ctx *ginext.Context)
	DeleteCustomer(ctx *ginext.Context)
	GetCustomer(ctx *ginext.Context)
	ListCustomers(ctx *ginext.Context)

	CreateOrganizer(ctx *ginext.Context)
	UpdateOrganizer(ctx *ginext.Context)
	DeleteOrganizer(ctx *ginext.Context)
	GetOrganizer(ctx *ginext.Context)
	ListOrganizers(ctx *ginext.Context)
	SuspendOrganizer(ctx *ginext.Context)
	UnsuspendOrganizer(ctx *ginext.Context)

	ListEventTypes(ctx *ginext.Context)
	CreateEventType(ctx *ginext.Context)

	UploadMedia(ctx *ginext.Context)
}

// Publisher is the slice of the rabbit client the service needs.
type Publisher interface {
	Publish(message []byte, delaySeconds int) error
	PublishAt(message []byte, fireAt time.Time) error
}

// Invalidator drops cached views through the dependency graph.
type Invalidator interface {
	Invalidate(ctx context.Context, entities ...cache.Entity)
}

// Uploader is the slice of the media store the service needs.
type Uploader interface {
	Upload(ctx context.Context, folder, fileName, contentType string, body io.Reader, size int64, progress media.ProgressFunc) (string, error)
}

// Notifier sends organizer status notices.
type Notifier interface {
	SendOrganizerStatusEmail(firstName, status, recipientEmail string) error
}

type service struct {
	repo  repo.Repository
	log   *zerolog.Logger
	rbt   Publisher
	views Invalidator
	store Uploader
	mail  Notifier
}

func NewService(repo repo.Repository, log *zerolog.Logger, rbt Publisher, views Invalidator, store Uploader, mail Notifier) Service {
	return &service{
		repo:  repo,
		log:   log,
		rbt:   rbt,
		views: views,
		store: store,
		mail:  mail,
	}
}

func atoiQuery(ctx *ginext.Context, name string) (int, error) {
	return strconv.Atoi(ctx.Query(name))
}

func parsePageQuery(ctx *ginext.Context) repo.PageQuery {
	q := repo.PageQuery{Page: 1, PageSize: 10}
	if v, err := atoiQuery(ctx, "page"); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := atoiQuery(ctx, "pageSize"); err == nil && v > 0 {
		q.PageSize = v
	}
	return q.Normalize()
}
