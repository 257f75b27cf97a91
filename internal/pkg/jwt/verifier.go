// internal/pkg/jwt/verifier.go
package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type Verifier struct {
	secret []byte
	logger *zap.Logger
}

func NewVerifier(cfg Config, logger *zap.Logger) *Verifier {
	return &Verifier{
		secret: []byte(cfg.Secret),
		logger: logger,
	}
}

func (v *Verifier) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Validate reports whether the token is well-formed, correctly signed and
// not expired. Every failure collapses to false; the diagnostic category is
// only logged, never surfaced to the caller.
func (v *Verifier) Validate(tokenString string) bool {
	if tokenString == "" {
		v.logger.Debug("jwt validation failed: empty token")
		return false
	}

	_, err := v.parse(tokenString)
	if err == nil {
		return true
	}

	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		v.logger.Error("invalid jwt signature", zap.Error(err))
	case errors.Is(err, jwt.ErrTokenExpired):
		v.logger.Error("jwt token is expired", zap.Error(err))
	case errors.Is(err, jwt.ErrTokenMalformed):
		v.logger.Error("invalid jwt token", zap.Error(err))
	default:
		v.logger.Error("jwt validation error", zap.Error(err))
	}
	return false
}

// Subject returns the subject claim of a token that already passed Validate.
// Callers must gate with Validate first; an invalid token yields an error.
func (v *Verifier) Subject(tokenString string) (string, error) {
	claims, err := v.parse(tokenString)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	return claims.Subject, nil
}
