package utils

import (
	"context"
)

type contextKey string

// EmailKey carries the verified token identity through the request.
const EmailKey contextKey = "email"

func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

func SetEmailContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, EmailKey, email)
}
