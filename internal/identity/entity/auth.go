package entity

import (
	"time"
)

type User struct {
	ID           int64
	MobileNumber string
	Name         string
	Email        string
	Role         string
	LastLogin    *time.Time
	CreatedAt    time.Time
}

type Challenge struct {
	ID           int64
	MobileNumber string
	CodeHash     string
	ExpiresAt    time.Time
	Attempts     int16
	Verified     bool
	CreatedAt    time.Time
}

// ---- //

type NewChallenge struct {
	ID           int64
	MobileNumber string
	CodeHash     string
	ExpiresAt    time.Time
}

type LoginUser struct {
	ID           int64
	MobileNumber string
	Name         string
	LoginAt      time.Time
}

type NewUser struct {
	ID           int64
	MobileNumber string
	Name         string
	Email        string
	Role         string
}

type UserListFilter struct {
	Size int32
	Page int32
}
