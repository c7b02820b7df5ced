package inbound

import (
	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/identity/usecase"
	"github.com/docuvault/docuvault/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for OTP authentication and the user
// directory.
type HTTPEndpoint struct {
	uc uc
}

// GenerateOTP issues a one-time passcode for a mobile number.
// @Summary Generate OTP
// @Description Issues a 6-digit code for the number, superseding any outstanding code. Returns the code in the response when no SMS provider is configured.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body GenerateOTPRequest true "OTP request payload"
// @Success 200 {object} GenerateOTPResponse "Issued"
// @Failure 400 {object} GenerateOTPResponse "Validation error"
// @Failure 429 {object} GenerateOTPResponse "Rate limited"
// @Failure 500 {object} GenerateOTPResponse "Internal server error"
// @Router /api/auth/generateOTP [post]
func (h *HTTPEndpoint) GenerateOTP(r *router.Request) (any, error) {
	var req GenerateOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPGenerate(r.Context(), usecase.OTPGenerateInput{
		MobileNumber: req.MobileNumber,
		ClientIP:     r.RemoteAddr,
	})
	if err != nil {
		return nil, err
	}

	return GenerateOTPResponse{
		Success:   true,
		Message:   resp.Message,
		OTP:       resp.OTP,
		ExpiresIn: resp.ExpiresIn,
	}, nil
}

// ValidateOTP verifies a one-time passcode and signs the caller in.
// @Summary Validate OTP
// @Description Verifies the code, provisions the account on first login, and returns a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ValidateOTPRequest true "OTP validation payload"
// @Success 200 {object} ValidateOTPResponse "Verified"
// @Failure 400 {object} ValidateOTPResponse "Invalid or expired code"
// @Failure 500 {object} ValidateOTPResponse "Internal server error"
// @Router /api/auth/validateOTP [post]
func (h *HTTPEndpoint) ValidateOTP(r *router.Request) (any, error) {
	var req ValidateOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPValidate(r.Context(), usecase.OTPValidateInput{
		MobileNumber: req.MobileNumber,
		OTP:          req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return ValidateOTPResponse{
		Success: true,
		Message: resp.Message,
		Token:   resp.Token,
		User: AuthUserModel{
			ID:           resp.User.ID,
			MobileNumber: resp.User.MobileNumber,
			Name:         resp.User.Name,
			Role:         resp.User.Role,
		},
	}, nil
}

// UserList returns a page of users.
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} UserListResponse "Users"
// @Failure 401 {object} UserListResponse "Authentication required"
// @Failure 500 {object} UserListResponse "Internal server error"
// @Security BearerAuth
// @Router /api/users [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return UserListResponse{
		Success: true,
		Users: lo.Map(resp.Users, func(u entity.User, _ int) UserModel {
			return toUserModel(u)
		}),
		Meta: map[string]any{
			"page":  resp.Page,
			"size":  resp.Size,
			"total": resp.Total,
		},
	}, nil
}

// UserDetail returns a single user.
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserDetailResponse "User"
// @Failure 401 {object} UserDetailResponse "Authentication required"
// @Failure 404 {object} UserDetailResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *HTTPEndpoint) UserDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserDetail(r.Context(), usecase.UserDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return UserDetailResponse{
		Success: true,
		User:    toUserModel(resp.User),
	}, nil
}

// UserCreate registers a user from the directory.
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserCreateRequest true "User payload"
// @Success 201 {object} UserCreateResponse "Created"
// @Failure 400 {object} UserCreateResponse "Validation error"
// @Failure 401 {object} UserCreateResponse "Authentication required"
// @Failure 409 {object} UserCreateResponse "Mobile number already registered"
// @Security BearerAuth
// @Router /api/users [post]
func (h *HTTPEndpoint) UserCreate(r *router.Request) (any, error) {
	var req UserCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UserCreate(r.Context(), usecase.UserCreateInput{
		MobileNumber: req.MobileNumber,
		Name:         req.Name,
		Email:        req.Email,
	})
	if err != nil {
		return nil, err
	}

	return UserCreateResponse{
		Success: true,
		Message: "User created successfully",
		User:    toUserModel(resp.User),
	}, nil
}

func toUserModel(u entity.User) UserModel {
	return UserModel{
		ID:           u.ID,
		MobileNumber: u.MobileNumber,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}
