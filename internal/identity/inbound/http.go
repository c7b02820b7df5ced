package inbound

import (
	"context"

	"github.com/docuvault/docuvault/internal/identity/usecase"
	"github.com/docuvault/docuvault/internal/pkg/router"
)

type uc interface {
	OTPGenerate(ctx context.Context, in usecase.OTPGenerateInput) (*usecase.OTPGenerateOutput, error)
	OTPValidate(ctx context.Context, in usecase.OTPValidateInput) (*usecase.OTPValidateOutput, error)

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*usecase.UserDetailOutput, error)
	UserCreate(ctx context.Context, in usecase.UserCreateInput) (*usecase.UserCreateOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// OTP Authentication
	r.POST("/api/auth/generateOTP", end.GenerateOTP)
	r.POST("/api/auth/validateOTP", end.ValidateOTP)

	// User Directory (need authenticated)
	r.GET("/api/users", end.UserList)
	r.GET("/api/users/:id", end.UserDetail)
	r.POST("/api/users", end.UserCreate)
}
