// internal/pkg/jwt/config.go
package jwt

import "time"

// Config holds the shared signing secret and token lifetime. Both come from
// the environment; nothing here is hardcoded.
type Config struct {
	Secret string
	TTL    time.Duration
}
