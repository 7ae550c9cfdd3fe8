package usecase

import "errors"

// Service-level error kinds. Handlers translate these to HTTP statuses with
// errors.Is instead of matching on message text.
var (
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("not allowed")
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("invalid request")
	ErrAlreadySettled = errors.New("order already settled")
	ErrGateway        = errors.New("payment gateway rejected the request")
	ErrGatewayTimeout = errors.New("payment gateway timed out")
)
