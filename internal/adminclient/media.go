package adminclient

import (
	"context"
	"io"

	"planora/internal/dto"
)

// MediaUploader is what form controllers need from the media service;
// tests substitute a recorder.
type MediaUploader interface {
	Upload(ctx context.Context, folder, fileName string, body io.Reader, size int64, progress func(int)) (string, error)
}

type MediaService struct {
	c *Client
}

func NewMediaService(c *Client) *MediaService {
	return &MediaService{c: c}
}

// Upload sends the file and returns the opaque mediaId the server
// minted. progress, when non-nil, receives 0-100 percentages.
func (s *MediaService) Upload(ctx context.Context, folder, fileName string, body io.Reader, size int64, progress func(int)) (string, error) {
	var resp dto.UploadMediaResponse
	if err := s.c.upload(ctx, "/v1/media", folder, fileName, body, size, progress, &resp); err != nil {
		return "", err
	}
	return resp.MediaID, nil
}
