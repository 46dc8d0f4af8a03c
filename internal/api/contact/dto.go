package contact

type SendInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}
