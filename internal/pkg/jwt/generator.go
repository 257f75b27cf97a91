// internal/pkg/jwt/generator.go
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type Generator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

// Generate creates a signed token for the given subject. Pure function of
// subject + clock + secret; nothing is persisted.
func (g *Generator) Generate(subject string) (string, error) {
	if len(g.secret) == 0 {
		return "", fmt.Errorf("jwt generator has empty secret")
	}
	if subject == "" {
		return "", fmt.Errorf("jwt subject must not be empty")
	}

	now := g.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        ulid.Make().String(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(g.secret)
}
