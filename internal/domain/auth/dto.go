// internal/domain/auth/dto.go
package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=50"`
	FirstName string `json:"firstName" binding:"required,min=3,max=20"`
	LastName  string `json:"lastName" binding:"required,min=3,max=20"`
	Password  string `json:"password" binding:"required,min=6,max=40"`
}

// LoginResponse mirrors the historical flat token payload.
type LoginResponse struct {
	Token     string `json:"token"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
