package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"planora/internal/cache"
	"planora/internal/dto"
	"planora/internal/model"
	"planora/internal/repo"
	"planora/pkg/validator"
)

func newRegistrationNumber() string {
	return "EVT-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *service) CreateEvent(ctx *ginext.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse create event request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		s.log.Error().Msgf("validation failed: %v", verr)
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	if !req.EndTime.After(req.StartTime) {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "End time must be after start time")
		return
	}

	if _, err := s.repo.GetCustomerByID(ctx.Request.Context(), req.CustomerID); err != nil {
		dto.CustomerNotFoundError(ctx)
		return
	}
	eventType, err := s.repo.GetEventTypeByID(ctx.Request.Context(), req.EventTypeID)
	if err != nil {
		dto.EventTypeNotFoundError(ctx)
		return
	}

	now := time.Now()
	event := &model.Event{
		RegistrationNumber: newRegistrationNumber(),
		Name:               req.Name,
		Location:           req.Location,
		Description:        req.Description,
		MediaID:            req.MediaID,
		Status:             model.StatusForTime(now, req.StartTime, req.EndTime),
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		CustomerID:         req.CustomerID,
		EventTypeID:        req.EventTypeID,
		OrganizerIDs:       req.OrganizerIDs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	id, err := s.repo.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create event in DB")
		dto.InternalServerError(ctx)
		return
	}
	event.ID = id

	s.schedulePhaseMessages(event)
	s.views.Invalidate(ctx.Request.Context(), cache.EntityEvent)

	s.log.Info().Int64("event_id", id).Msg("event created successfully")
	dto.SuccessCreatedResponse(ctx, eventDetails(event, eventType.Label))
}

// schedulePhaseMessages publishes one delayed message per pending phase
// boundary; the worker advances the status when they fire.
func (s *service) schedulePhaseMessages(e *model.Event) {
	now := time.Now()
	for _, msg := range []dto.EventPhaseMessage{
		{EventID: e.ID, Phase: "start", FireAt: e.StartTime},
		{EventID: e.ID, Phase: "end", FireAt: e.EndTime},
	} {
		if msg.FireAt.Before(now) {
			continue
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to marshal phase message")
			continue
		}
		if err := s.rbt.PublishAt(payload, msg.FireAt); err != nil {
			s.log.Error().Err(err).Int64("event_id", e.ID).Str("phase", msg.Phase).
				Msg("failed to publish phase message")
		}
	}
}

func (s *service) UpdateEvent(ctx *ginext.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	event, err := s.repo.GetEventByID(ctx.Request.Context(), eventID)
	if err != nil {
		dto.EventNotFoundError(ctx)
		return
	}

	periodChanged := false
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.MediaID != nil {
		event.MediaID = *req.MediaID
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
		periodChanged = true
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
		periodChanged = true
	}
	if req.CustomerID != nil {
		if _, err := s.repo.GetCustomerByID(ctx.Request.Context(), *req.CustomerID); err != nil {
			dto.CustomerNotFoundError(ctx)
			return
		}
		event.CustomerID = *req.CustomerID
	}
	if req.EventTypeID != nil {
		if _, err := s.repo.GetEventTypeByID(ctx.Request.Context(), *req.EventTypeID); err != nil {
			dto.EventTypeNotFoundError(ctx)
			return
		}
		event.EventTypeID = *req.EventTypeID
	}
	if req.OrganizerIDs != nil {
		event.OrganizerIDs = req.OrganizerIDs
	}

	if !event.EndTime.After(event.StartTime) {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "End time must be after start time")
		return
	}

	if err := s.repo.UpdateEvent(ctx.Request.Context(), event); err != nil {
		if errors.Is(err, repo.ErrEventNotFound) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to update event")
		dto.InternalServerError(ctx)
		return
	}

	if periodChanged {
		s.schedulePhaseMessages(event)
	}
	s.views.Invalidate(ctx.Request.Context(), cache.EntityEvent)

	label := ""
	if t, err := s.repo.GetEventTypeByID(ctx.Request.Context(), event.EventTypeID); err == nil {
		label = t.Label
	}

	s.log.Info().Int64("event_id", eventID).Msg("event updated successfully")
	dto.SuccessResponse(ctx, eventDetails(event, label))
}

func (s *service) DeleteEvent(ctx *ginext.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
		return
	}

	if err := s.repo.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, repo.ErrEventNotFound) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to delete event")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityEvent)
	s.log.Info().Int64("event_id", eventID).Msg("event deleted")
	dto.SuccessResponse(ctx, map[string]any{"id": eventID})
}

func (s *service) GetEvent(ctx *ginext.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
		return
	}

	event, err := s.repo.GetEventByID(ctx.Request.Context(), eventID)
	if err != nil {
		dto.EventNotFoundError(ctx)
		return
	}

	label := ""
	if t, err := s.repo.GetEventTypeByID(ctx.Request.Context(), event.EventTypeID); err == nil {
		label = t.Label
	}

	dto.SuccessResponse(ctx, eventDetails(event, label))
}

func (s *service) ListEvents(ctx *ginext.Context) {
	q := parsePageQuery(ctx)
	status := ctx.Query("status")

	rows, total, err := s.repo.ListEvents(ctx.Request.Context(), q, status)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list events")
		dto.InternalServerError(ctx)
		return
	}

	items := make([]dto.EventListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.EventListItem{
			ID:                 row.ID,
			RegistrationNumber: row.RegistrationNumber,
			Name:               row.Name,
			Location:           row.Location,
			Status:             row.Status,
			StartTime:          row.StartTime,
			EndTime:            row.EndTime,
			CustomerName:       row.CustomerName,
			EventType:          row.EventTypeLabel,
			MediaID:            row.MediaID,
		})
	}

	dto.SuccessResponse(ctx, dto.NewPaginated(items, q.Page, q.PageSize, total))
}

// SuspendEvent performs the transition as requested. The guards
// (CanSuspend/CanUnsuspend) are advisory and live in the client; the
// boundary here trusts the caller.
func (s *service) SuspendEvent(ctx *ginext.Context) {
	s.setEventStatus(ctx, model.StatusSuspended)
}

func (s *service) UnsuspendEvent(ctx *ginext.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
		return
	}

	event, err := s.repo.GetEventByID(ctx.Request.Context(), eventID)
	if err != nil {
		dto.EventNotFoundError(ctx)
		return
	}

	// The event rejoins whatever phase the clock puts it in.
	next := model.StatusForTime(time.Now(), event.StartTime, event.EndTime)
	if err := s.repo.SetEventStatus(ctx.Request.Context(), eventID, next); err != nil {
		s.log.Error().Err(err).Msg("failed to unsuspend event")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityEvent)
	s.log.Info().Int64("event_id", eventID).Str("status", string(next)).Msg("event reactivated")
	dto.SuccessResponse(ctx, map[string]any{"id": eventID, "status": next})
}

func (s *service) setEventStatus(ctx *ginext.Context, status model.EventStatus) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
		return
	}

	if err := s.repo.SetEventStatus(ctx.Request.Context(), eventID, status); err != nil {
		if errors.Is(err, repo.ErrEventNotFound) {
			dto.EventNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to set event status")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityEvent)
	s.log.Info().Int64("event_id", eventID).Str("status", string(status)).Msg("event status set")
	dto.SuccessResponse(ctx, map[string]any{"id": eventID, "status": status})
}

func (s *service) EventGallery(ctx *ginext.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
		return
	}

	if _, err := s.repo.GetEventByID(ctx.Request.Context(), eventID); err != nil {
		dto.EventNotFoundError(ctx)
		return
	}

	mediaRows, err := s.repo.ListMediaByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list event gallery")
		dto.InternalServerError(ctx)
		return
	}

	items := make([]dto.GalleryItem, 0, len(mediaRows))
	for _, m := range mediaRows {
		items = append(items, dto.GalleryItem{
			MediaID:     m.ID,
			FileName:    m.FileName,
			ContentType: m.ContentType,
			Size:        m.Size,
			CreatedAt:   m.CreatedAt,
		})
	}

	dto.SuccessResponse(ctx, items)
}

func eventDetails(e *model.Event, typeLabel string) dto.EventDetails {
	organizerIDs := e.OrganizerIDs
	if organizerIDs == nil {
		organizerIDs = []int64{}
	}
	return dto.EventDetails{
		ID:                 e.ID,
		RegistrationNumber: e.RegistrationNumber,
		Name:               e.Name,
		Location:           e.Location,
		Description:        e.Description,
		MediaID:            e.MediaID,
		Status:             e.Status,
		StartTime:          e.StartTime,
		EndTime:            e.EndTime,
		CustomerID:         e.CustomerID,
		OrganizerIDs:       organizerIDs,
		EventTypeID:        e.EventTypeID,
		EventType:          typeLabel,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
