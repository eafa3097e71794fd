package model

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUserNotVerified = errors.New("user is not allowed to join")

type LMSVerifyRequest struct {
	Username string `json:"username"`
}

type LMSVerifyResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}

// ServiceClaims identify this service when it calls the LMS.
type ServiceClaims struct {
	jwt.RegisteredClaims

	Service  string `json:"service"`
	Username string `json:"username,omitempty"`
}
