package oauth

import "context"

// Provider resolves a third-party access token to a user profile.
type Provider interface {
	GetUserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
}

type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Provider      string `json:"provider"`
}
