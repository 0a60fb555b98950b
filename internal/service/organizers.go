package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"planora/internal/cache"
	"planora/internal/dto"
	"planora/internal/model"
	"planora/internal/repo"
	"planora/pkg/validator"
)

func (s *service) CreateOrganizer(ctx *ginext.Context) {
	var req dto.CreateOrganizerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse create organizer request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	organizer := &model.Organizer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    model.OrganizerActive,
		Address:   req.Address,
	}

	id, err := s.repo.CreateOrganizer(ctx.Request.Context(), organizer)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create organizer in DB")
		dto.InternalServerError(ctx)
		return
	}
	organizer.ID = id

	s.views.Invalidate(ctx.Request.Context(), cache.EntityOrganizer)
	s.log.Info().Int64("organizer_id", id).Msg("organizer created")
	dto.SuccessCreatedResponse(ctx, organizerResponse(organizer))
}

func (s *service) UpdateOrganizer(ctx *ginext.Context) {
	organizerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid organizer ID")
		return
	}

	var req dto.UpdateOrganizerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	organizer, err := s.repo.GetOrganizerByID(ctx.Request.Context(), organizerID)
	if err != nil {
		dto.OrganizerNotFoundError(ctx)
		return
	}

	if req.FirstName != nil {
		organizer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		organizer.LastName = *req.LastName
	}
	if req.Email != nil {
		organizer.Email = *req.Email
	}
	if req.Phone != nil {
		organizer.Phone = *req.Phone
	}
	if req.Address != nil {
		organizer.Address = *req.Address
	}

	if err := s.repo.UpdateOrganizer(ctx.Request.Context(), organizer); err != nil {
		if errors.Is(err, repo.ErrOrganizerNotFound) {
			dto.OrganizerNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to update organizer")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityOrganizer)
	s.log.Info().Int64("organizer_id", organizerID).Msg("organizer updated")
	dto.SuccessResponse(ctx, organizerResponse(organizer))
}

func (s *service) DeleteOrganizer(ctx *ginext.Context) {
	organizerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid organizer ID")
		return
	}

	if err := s.repo.DeleteOrganizer(ctx.Request.Context(), organizerID); err != nil {
		if errors.Is(err, repo.ErrOrganizerNotFound) {
			dto.OrganizerNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to delete organizer")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityOrganizer)
	s.log.Info().Int64("organizer_id", organizerID).Msg("organizer deleted")
	dto.SuccessResponse(ctx, map[string]any{"id": organizerID})
}

func (s *service) GetOrganizer(ctx *ginext.Context) {
	organizerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid organizer ID")
		return
	}

	organizer, err := s.repo.GetOrganizerByID(ctx.Request.Context(), organizerID)
	if err != nil {
		dto.OrganizerNotFoundError(ctx)
		return
	}

	dto.SuccessResponse(ctx, organizerResponse(organizer))
}

func (s *service) ListOrganizers(ctx *ginext.Context) {
	q := parsePageQuery(ctx)

	organizers, total, err := s.repo.ListOrganizers(ctx.Request.Context(), q)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list organizers")
		dto.InternalServerError(ctx)
		return
	}

	items := make([]dto.OrganizerResponse, 0, len(organizers))
	for i := range organizers {
		items = append(items, organizerResponse(&organizers[i]))
	}

	dto.SuccessResponse(ctx, dto.NewPaginated(items, q.Page, q.PageSize, total))
}

func (s *service) SuspendOrganizer(ctx *ginext.Context) {
	s.setOrganizerStatus(ctx, model.OrganizerSuspended)
}

func (s *service) UnsuspendOrganizer(ctx *ginext.Context) {
	s.setOrganizerStatus(ctx, model.OrganizerActive)
}

func (s *service) setOrganizerStatus(ctx *ginext.Context, status string) {
	organizerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid organizer ID")
		return
	}

	organizer, err := s.repo.GetOrganizerByID(ctx.Request.Context(), organizerID)
	if err != nil {
		dto.OrganizerNotFoundError(ctx)
		return
	}

	if err := s.repo.SetOrganizerStatus(ctx.Request.Context(), organizerID, status); err != nil {
		s.log.Error().Err(err).Msg("failed to set organizer status")
		dto.InternalServerError(ctx)
		return
	}

	if err := s.mail.SendOrganizerStatusEmail(organizer.FirstName, status, organizer.Email); err != nil {
		s.log.Warn().Err(err).Msg("failed to send organizer status email")
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityOrganizer)
	s.log.Info().Int64("organizer_id", organizerID).Str("status", status).Msg("organizer status set")
	dto.SuccessResponse(ctx, map[string]any{"id": organizerID, "status": status})
}

func organizerResponse(o *model.Organizer) dto.OrganizerResponse {
	return dto.OrganizerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		Status:    o.Status,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
