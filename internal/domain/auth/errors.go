package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("email or password is incorrect")
	ErrInvalidToken        = errors.New("token is invalid or expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
)
