package reviews

import "time"

type CreateReviewRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=128"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required"`
	Review string `json:"review" validate:"required,min=10"`
}

// UpdateReviewRequest is the allow-listed patch for a review. The approved
// flag is deliberately absent; only the approve operation can change it.
type UpdateReviewRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=128"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty"`
	Review *string `json:"review" validate:"omitempty,min=10"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Review    string    `json:"review"`
	Image     string    `json:"image,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
