package dto

import "time"

type UploadMediaResponse struct {
	MediaID string `json:"mediaId"`
}

type GalleryItem struct {
	MediaID     string    `json:"mediaId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType,omitempty"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}
