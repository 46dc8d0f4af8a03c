package contact

import "DigitalLab/pkg/response"

var ErrInvalidContactData = response.NewError(400, "invalid contact data")
