// internal/domain/user/entity.go
package user

import "time"

// User is a registered account. Email is stored and compared exactly as
// given; the admin flag is profile data, not a grant.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Password  string    `json:"-" db:"password"`
	Admin     bool      `json:"admin" db:"admin"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
