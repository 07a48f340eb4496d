package models

import "time"

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthSession is what the backend hands out at login: opaque token
// identifiers (not JWTs) plus the authenticated user.
type AuthSession struct {
	AccessTokenID  string `json:"access_token_id"`
	RefreshTokenID string `json:"refresh_token_id"`
	User           User   `json:"user"`
}
