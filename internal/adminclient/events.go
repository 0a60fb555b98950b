package adminclient

import (
	"context"
	"fmt"
	"time"

	"planora/internal/dto"
	"planora/internal/model"
)

// EventService is the read path for events. Errors propagate to the
// caller; surfacing them is the view controller's job.
type EventService struct {
	c *Client
}

func NewEventService(c *Client) *EventService {
	return &EventService{c: c}
}

func (s *EventService) List(ctx context.Context, opts ListOptions) (*Page[dto.EventListItem], error) {
	var page Page[dto.EventListItem]
	if err := s.c.get(ctx, "/v1/events", opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*dto.EventDetails, error) {
	var details dto.EventDetails
	if err := s.c.get(ctx, fmt.Sprintf("/v1/events/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *EventService) Gallery(ctx context.Context, id int64) ([]dto.GalleryItem, error) {
	var items []dto.GalleryItem
	if err := s.c.get(ctx, fmt.Sprintf("/v1/events/%d/gallery", id), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CanSuspend reports whether the suspend action should be offered for
// this event. Advisory only: the action boundary does not re-check it.
func (s *EventService) CanSuspend(e *dto.EventDetails) bool {
	return e.Status.CanSuspend()
}

func (s *EventService) CanUnsuspend(e *dto.EventDetails) bool {
	return e.Status.CanUnsuspend()
}

var statusLabels = map[model.EventStatus]string{
	model.StatusNotStarted: "À venir",
	model.StatusInProgress: "En cours",
	model.StatusFinished:   "Terminé",
	model.StatusSuspended:  "Suspendu",
}

var statusColors = map[model.EventStatus]string{
	model.StatusNotStarted: "info",
	model.StatusInProgress: "success",
	model.StatusFinished:   "default",
	model.StatusSuspended:  "warning",
}

// StatusLabel maps a status to its display label; a fixed lookup, the
// same status always yields the same label.
func (s *EventService) StatusLabel(status model.EventStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

func (s *EventService) StatusColor(status model.EventStatus) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "default"
}

// FormatEventPeriod renders an event period with the start always
// before the end.
func (s *EventService) FormatEventPeriod(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return fmt.Sprintf("le %s de %s à %s",
			start.Format("02/01/2006"), start.Format("15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("du %s au %s",
		start.Format("02/01/2006 15:04"), end.Format("02/01/2006 15:04"))
}

// TotalLabel renders the table footer count from the envelope's
// totalItems, independent of how many rows the current page holds.
func (s *EventService) TotalLabel(totalItems int) string {
	if totalItems == 1 {
		return "1 événement au total"
	}
	return fmt.Sprintf("%d événements au total", totalItems)
}
