package blogs

import "time"

const (
	MaxImagesOnCreate = 6
	MaxImagesOnUpdate = 4
	DefaultPageSize   = 6
)

type CreateBlogRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=256"`
	Excerpt  string `json:"excerpt" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// UpdateBlogRequest carries a partial patch. A nil field means the client
// did not send it; a pointer to the empty string clears the field.
type UpdateBlogRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=3,max=256"`
	Excerpt  *string `json:"excerpt" validate:"omitempty,max=200"`
	Content  *string `json:"content" validate:"omitempty"`
	Category *string `json:"category" validate:"omitempty"`
}

type ListBlogsQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

type BlogImageResponse struct {
	URL     string `json:"url"`
	MediaID string `json:"media_id"`
}

type BlogResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Excerpt     string              `json:"excerpt"`
	Content     string              `json:"content"`
	ReadingTime int                 `json:"reading_time"`
	Images      []BlogImageResponse `json:"images"`
	Category    string              `json:"category"`
	Views       int                 `json:"views"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// BlogListItem is the trimmed projection used on the listing page; the full
// content only ships on the single-blog read.
type BlogListItem struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Excerpt     string              `json:"excerpt"`
	ReadingTime int                 `json:"reading_time"`
	Images      []BlogImageResponse `json:"images"`
	Category    string              `json:"category"`
	Views       int                 `json:"views"`
	CreatedAt   time.Time           `json:"created_at"`
}

type BlogListResponse struct {
	Success    bool           `json:"success"`
	Blogs      []BlogListItem `json:"blogs"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalBlogs int            `json:"totalBlogs"`
	TotalPages int            `json:"totalPages"`
	HasPrev    bool           `json:"hasPrev"`
	HasNext    bool           `json:"hasNext"`
}
