package auth

import (
	"fmt"
	"time"

	"carparts-store/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the typed JWT payload. The email is the only identity this
// system knows; tokens are never stored server-side.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed bearer tokens. The signing key is
// loaded once at startup and never rotated during the process lifetime.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(config utils.JWTConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(config.Secret),
		expiry: time.Duration(config.ExpiryHours) * time.Hour,
	}
}

// Issue creates a signed JWT asserting the given email.
func (tm *TokenManager) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token for %s: %w", email, err)
	}
	return token, nil
}

// Verify parses and validates a token string and returns the asserted email.
// Tampered, unsigned, wrong-algorithm and expired tokens all fail.
func (tm *TokenManager) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.Email, nil
}
