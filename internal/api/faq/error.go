package faqs

import "DigitalLab/pkg/response"

var (
	ErrFAQNotFound    = response.NewError(404, "faq not found")
	ErrCreateFAQ      = response.NewError(500, "failed to create faq")
	ErrUpdateFAQ      = response.NewError(500, "failed to update faq")
	ErrDeleteFAQ      = response.NewError(500, "failed to delete faq")
	ErrInvalidFAQData = response.NewError(400, "invalid faq data")
)
