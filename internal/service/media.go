package service

import (
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"planora/internal/cache"
	"planora/internal/dto"
	"planora/internal/media"
	"planora/internal/model"
)

// UploadMedia accepts a multipart file plus a folder classification
// field and returns the opaque mediaId other entities reference.
func (s *service) UploadMedia(ctx *ginext.Context) {
	folder := ctx.PostForm("folder")
	if !media.AllowedFolders[folder] {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown media folder")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Missing file")
		return
	}

	var eventID int64
	if raw := ctx.PostForm("eventId"); raw != "" {
		eventID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid event ID")
			return
		}
		if _, err := s.repo.GetEventByID(ctx.Request.Context(), eventID); err != nil {
			dto.EventNotFoundError(ctx)
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to open uploaded file")
		dto.InternalServerError(ctx)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	progress := func(percent int) {
		s.log.Debug().Str("file", fileHeader.Filename).Int("percent", percent).Msg("media upload progress")
	}

	mediaID, err := s.store.Upload(ctx.Request.Context(), folder, fileHeader.Filename, contentType, file, fileHeader.Size, progress)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store media")
		dto.InternalServerError(ctx)
		return
	}

	if err := s.repo.CreateMedia(ctx.Request.Context(), &model.Media{
		ID:          mediaID,
		Folder:      folder,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		EventID:     eventID,
	}); err != nil {
		s.log.Error().Err(err).Msg("failed to record media in DB")
		dto.InternalServerError(ctx)
		return
	}

	s.views.Invalidate(ctx.Request.Context(), cache.EntityMedia)
	s.log.Info().Str("media_id", mediaID).Str("folder", folder).Msg("media uploaded")
	dto.SuccessCreatedResponse(ctx, dto.UploadMediaResponse{MediaID: mediaID})
}
