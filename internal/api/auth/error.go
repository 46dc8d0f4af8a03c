package auth

import "DigitalLab/pkg/response"

var (
	ErrInvalidCredentials = response.NewError(401, "invalid email or password")
	ErrLoginFailed        = response.NewError(500, "failed to log in")
)
