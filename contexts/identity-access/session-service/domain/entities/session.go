package entities

import "time"

// Subject is the voter identity bound into a session token.
type Subject struct {
	RegistrationNumber string
	Email              string
}

type Claims struct {
	Subject   Subject
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type IssuedToken struct {
	Token     string
	Claims    Claims
	ExpiresAt time.Time
}
