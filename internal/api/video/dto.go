package videos

import "time"

type CreateShortVideoRequest struct {
	VideoID string `json:"video_id" validate:"required"`
}

type CreateLongVideoRequest struct {
	Title   string `json:"title" validate:"required"`
	VideoID string `json:"video_id" validate:"required"`
}

type ShortVideoResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LongVideoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	VideoID   string    `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}
