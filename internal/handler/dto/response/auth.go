package response

import (
	"github.com/google/uuid"

	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	SessionID   uuid.UUID `json:"session_id"`
	Username    string    `json:"username"`
	CartReset   bool      `json:"cart_reset"`
}

type IdentityResponse struct {
	SessionID       uuid.UUID `json:"session_id"`
	Username        string    `json:"username"`
	IsAuthenticated bool      `json:"is_authenticated"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		SessionID:   result.SessionID,
		Username:    result.Username,
		CartReset:   result.CartReset,
	}
}

func FromIdentityView(view *queries.IdentityView) *IdentityResponse {
	return &IdentityResponse{
		SessionID:       view.SessionID,
		Username:        view.Username,
		IsAuthenticated: view.IsAuthenticated,
	}
}
