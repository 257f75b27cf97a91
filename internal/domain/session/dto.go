// internal/domain/session/dto.go
package session

import "time"

// SessionRequest is the write payload. teacher_id keeps its historical
// snake_case name on the wire; users carries participant ids.
type SessionRequest struct {
	Name        string    `json:"name" binding:"required,max=50"`
	Date        time.Time `json:"date" binding:"required"`
	TeacherID   *int64    `json:"teacher_id"`
	Description string    `json:"description" binding:"required,max=2500"`
	Users       []int64   `json:"users"`
}

type SessionResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   *int64    `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToResponse(s *Session) SessionResponse {
	users := make([]int64, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, u.ID)
	}

	return SessionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date,
		TeacherID:   s.TeacherID,
		Description: s.Description,
		Users:       users,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
