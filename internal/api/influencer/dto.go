package influencers

import "time"

type CreateInfluencerRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=128"`
	Description string   `json:"description" validate:"required"`
	Keywords    []string `json:"keywords" validate:"omitempty,dive,min=1"`
}

type UpdateInfluencerRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=128"`
	Description *string  `json:"description" validate:"omitempty"`
	Keywords    []string `json:"keywords" validate:"omitempty,dive,min=1"`
}

type InfluencerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Pic         string    `json:"pic"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
