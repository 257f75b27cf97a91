// internal/domain/session/entity.go
package session

import (
	"time"

	"bookings-service/internal/domain/user"
)

// Session is a bookable class with an optional teacher and an ordered
// roster of participants. The roster carries set semantics on user id;
// the service layer is the sole enforcer of that invariant.
type Session struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Date        time.Time   `json:"date" db:"date"`
	Description string      `json:"description" db:"description"`
	TeacherID   *int64      `json:"teacher_id" db:"teacher_id"`
	Users       []user.User `json:"users"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// NormalizeRoster replaces a nil roster with an empty one so downstream
// iteration never has to nil-check.
func (s *Session) NormalizeRoster() {
	if s.Users == nil {
		s.Users = []user.User{}
	}
}

// HasParticipant reports membership by user id equality only.
func (s *Session) HasParticipant(userID int64) bool {
	for _, u := range s.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}
