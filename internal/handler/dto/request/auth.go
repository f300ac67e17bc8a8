package request

import (
	"storefront/internal/domain/session"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (session.Username, error) {
	return session.NewUsername(r.Username)
}
