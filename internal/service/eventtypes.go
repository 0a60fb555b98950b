package service

import (
	"fmt"

	"github.com/wb-go/wbf/ginext"

	"planora/internal/cache"
	"planora/internal/dto"
	"planora/internal/model"
	"planora/pkg/validator"
)

func (s *service) ListEventTypes(ctx *ginext.Context) {
	types, err := s.repo.ListEventTypes(ctx.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list event types")
		dto.InternalServerError(ctx)
		return
	}

	if types == nil {
		types = []model.EventType{}
	}
	dto.SuccessResponse(ctx, types)
}

func (s *service) CreateEventType(ctx *ginext.Context) {
	var req dto.CreateEventTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	id, err := s.repo.CreateEventType(ctx.Request.Context(), req.Label)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create event type")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityEventType)
	s.log.Info().Int64("event_type_id", id).Str("label", req.Label).Msg("event type created")
	dto.SuccessCreatedResponse(ctx, model.EventType{ID: id, Label: req.Label})
}
