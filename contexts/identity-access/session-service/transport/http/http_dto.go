package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expira"`
}

type ClaimsResponse struct {
	RegistrationNumber string    `json:"id"`
	Email              string    `json:"email"`
	TokenID            string    `json:"jti"`
	IssuedAt           time.Time `json:"iat"`
	ExpiresAt          time.Time `json:"exp"`
}
