package entity

import "time"

type Blog struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Excerpt     string    `db:"excerpt"`
	Content     string    `db:"content"`
	ReadingTime int       `db:"reading_time"`
	Category    string    `db:"category"`
	Views       int       `db:"views"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	Images []BlogImage `db:"-"`
}

// BlogImage is one remotely hosted image owned by a blog post. ObjectKey is
// the media-store reference used for deletion; Position preserves the order
// the client uploaded them in.
type BlogImage struct {
	ID        string `db:"id"`
	BlogID    string `db:"blog_id"`
	URL       string `db:"url"`
	ObjectKey string `db:"object_key"`
	Position  int    `db:"position"`
}
