package inbound

import (
	"net/http"
	"time"
)

type GenerateOTPRequest struct {
	MobileNumber string `json:"mobile_number"`
}

type GenerateOTPResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OTP       string `json:"otp,omitempty"`
	ExpiresIn int64  `json:"expires_in"`
}

type ValidateOTPRequest struct {
	MobileNumber string `json:"mobile_number"`
	OTP          string `json:"otp"`
}

type ValidateOTPResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    AuthUserModel `json:"user"`
}

// AuthUserModel is the slim user shape returned with a fresh token.
type AuthUserModel struct {
	ID           int64  `json:"id,string"`
	MobileNumber string `json:"mobile_number"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type UserModel struct {
	ID           int64      `json:"id,string"`
	MobileNumber string     `json:"mobile_number"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type UserListResponse struct {
	Success bool           `json:"success"`
	Users   []UserModel    `json:"users"`
	Meta    map[string]any `json:"meta"`
}

type UserDetailResponse struct {
	Success bool      `json:"success"`
	User    UserModel `json:"user"`
}

type UserCreateRequest struct {
	MobileNumber string `json:"mobile_number"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

type UserCreateResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    UserModel `json:"user"`
}

func (UserCreateResponse) StatusCode() int {
	return http.StatusCreated
}
