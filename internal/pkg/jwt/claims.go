// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the token claims. The subject is the user's email; no
// roles or grants are encoded, the admin flag travels as profile data only.
type Claims struct {
	jwt.RegisteredClaims
}
