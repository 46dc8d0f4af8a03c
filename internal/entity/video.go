package entity

import "time"

// ShortFormVideo references a short-form clip by its platform video id.
type ShortFormVideo struct {
	ID        string    `db:"id"`
	VideoID   string    `db:"video_id"`
	CreatedAt time.Time `db:"created_at"`
}

// LongFormVideo additionally carries a display title.
type LongFormVideo struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	VideoID   string    `db:"video_id"`
	CreatedAt time.Time `db:"created_at"`
}
