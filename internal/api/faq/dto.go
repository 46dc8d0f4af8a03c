package faqs

import "time"

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,min=5"`
	Answer   string `json:"answer" validate:"required"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question" validate:"omitempty,min=5"`
	Answer   *string `json:"answer" validate:"omitempty"`
}

type FAQResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
