// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/nestlist/nestlist/api/proto/auth/v1/generated"
	todov1 "github.com/nestlist/nestlist/api/proto/todo/v1/generated"
	"github.com/nestlist/nestlist/pkg/auth"
)

// ValidationConfig holds the request-shape limits.
type ValidationConfig struct {
	MinPasswordLength     int
	RequirePasswordUpper  bool
	RequirePasswordLower  bool
	RequirePasswordNumber bool
	MinUsernameLength     int
	MaxUsernameLength     int
	MaxEmailLength        int
	MaxListNameLength     int
	MaxDescriptionLength  int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MinPasswordLength:     8,
		RequirePasswordUpper:  true,
		RequirePasswordLower:  true,
		RequirePasswordNumber: true,
		MinUsernameLength:     3,
		MaxUsernameLength:     50,
		MaxEmailLength:        255,
		MaxListNameLength:     255,
		MaxDescriptionLength:  5000,
	}
}

// ValidationInterceptor rejects malformed requests before they reach a
// service, so handlers only see shape-valid input.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{
		config: config,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// Stream returns a stream server interceptor. The only streaming surface
// is the health watch, which needs no validation.
func (v *ValidationInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		return handler(srv, stream)
	}
}

// validateRequest validates different request types
func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	switch r := req.(type) {
	case *authv1.RegisterRequest:
		return v.validateRegisterRequest(r)
	case *authv1.LoginRequest:
		return v.validateLoginRequest(r)
	case *authv1.RefreshTokenRequest:
		return v.validateRefreshTokenRequest(r)
	case *todov1.CreateListRequest:
		return v.validateCreateListRequest(r)
	case *todov1.GetListRequest:
		return v.requireUUID("id", r.Id)
	case *todov1.UpdateListRequest:
		return v.validateUpdateListRequest(r)
	case *todov1.DeleteListRequest:
		return v.requireUUID("id", r.Id)
	case *todov1.GetListStatsRequest:
		return v.requireUUID("id", r.Id)
	case *todov1.CreateTaskRequest:
		return v.validateCreateTaskRequest(r)
	case *todov1.CreateSubtaskRequest:
		return v.validateCreateSubtaskRequest(r)
	case *todov1.GetTaskRequest:
		return v.requireUUID("id", r.Id)
	case *todov1.UpdateTaskRequest:
		return v.validateUpdateTaskRequest(r)
	case *todov1.DeleteTaskRequest:
		return v.requireUUID("id", r.Id)
	}
	return nil
}

// Auth service validations

func (v *ValidationInterceptor) validateRegisterRequest(req *authv1.RegisterRequest) error {
	var errors []string

	if err := v.validateEmail(req.Email); err != nil {
		errors = append(errors, fmt.Sprintf("email: %s", err.Error()))
	}
	if err := v.validateUsername(req.Username); err != nil {
		errors = append(errors, fmt.Sprintf("username: %s", err.Error()))
	}
	if err := v.validatePassword(req.Password); err != nil {
		errors = append(errors, fmt.Sprintf("password: %s", err.Error()))
	}

	if len(errors) > 0 {
		return status.Error(codes.InvalidArgument, strings.Join(errors, "; "))
	}
	return nil
}

func (v *ValidationInterceptor) validateLoginRequest(req *authv1.LoginRequest) error {
	if req.Email == "" {
		return status.Error(codes.InvalidArgument, "email or username is required")
	}
	if req.Password == "" {
		return status.Error(codes.InvalidArgument, "password is required")
	}
	return nil
}

func (v *ValidationInterceptor) validateRefreshTokenRequest(req *authv1.RefreshTokenRequest) error {
	if req.RefreshToken == "" {
		return status.Error(codes.InvalidArgument, "refresh_token is required")
	}
	return nil
}

// List service validations

func (v *ValidationInterceptor) validateCreateListRequest(req *todov1.CreateListRequest) error {
	if err := v.validateListName(req.Name); err != nil {
		return err
	}
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument,
			"description must not exceed %d characters", v.config.MaxDescriptionLength)
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateListRequest(req *todov1.UpdateListRequest) error {
	if err := v.requireUUID("id", req.Id); err != nil {
		return err
	}
	if req.Name != nil {
		if err := v.validateListName(req.GetName()); err != nil {
			return err
		}
	}
	if req.Description != nil && len(req.GetDescription()) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument,
			"description must not exceed %d characters", v.config.MaxDescriptionLength)
	}
	return nil
}

// Task service validations

func (v *ValidationInterceptor) validateCreateTaskRequest(req *todov1.CreateTaskRequest) error {
	if err := v.requireUUID("list_id", req.ListId); err != nil {
		return err
	}
	return v.validateTaskDescription(req.Description)
}

func (v *ValidationInterceptor) validateCreateSubtaskRequest(req *todov1.CreateSubtaskRequest) error {
	if err := v.requireUUID("parent_task_id", req.ParentTaskId); err != nil {
		return err
	}
	return v.validateTaskDescription(req.Description)
}

func (v *ValidationInterceptor) validateUpdateTaskRequest(req *todov1.UpdateTaskRequest) error {
	if err := v.requireUUID("id", req.Id); err != nil {
		return err
	}
	if req.Description != nil {
		if err := v.validateTaskDescription(req.GetDescription()); err != nil {
			return err
		}
	}
	if req.ListId != nil {
		if err := v.requireUUID("list_id", req.GetListId()); err != nil {
			return err
		}
	}
	if req.Cascade && req.Completed == nil {
		return status.Error(codes.InvalidArgument, "cascade requires a completed value")
	}
	return nil
}

// Shared helpers

func (v *ValidationInterceptor) requireUUID(field, value string) error {
	if value == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	if _, err := uuid.Parse(value); err != nil {
		return status.Errorf(codes.InvalidArgument, "%s is not a valid id", field)
	}
	return nil
}

func (v *ValidationInterceptor) validateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	if len(name) > v.config.MaxListNameLength {
		return status.Errorf(codes.InvalidArgument,
			"name must not exceed %d characters", v.config.MaxListNameLength)
	}
	return nil
}

func (v *ValidationInterceptor) validateTaskDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return status.Error(codes.InvalidArgument, "description is required")
	}
	if len(description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument,
			"description must not exceed %d characters", v.config.MaxDescriptionLength)
	}
	return nil
}

func (v *ValidationInterceptor) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("is required")
	}
	if len(email) > v.config.MaxEmailLength {
		return fmt.Errorf("must not exceed %d characters", v.config.MaxEmailLength)
	}
	if err := auth.ValidateEmail(email); err != nil {
		return err
	}
	return nil
}

func (v *ValidationInterceptor) validateUsername(username string) error {
	if len(username) < v.config.MinUsernameLength {
		return fmt.Errorf("must be at least %d characters", v.config.MinUsernameLength)
	}
	if len(username) > v.config.MaxUsernameLength {
		return fmt.Errorf("must not exceed %d characters", v.config.MaxUsernameLength)
	}
	return auth.ValidateUsername(username)
}

func (v *ValidationInterceptor) validatePassword(password string) error {
	if len(password) < v.config.MinPasswordLength {
		return fmt.Errorf("must be at least %d characters", v.config.MinPasswordLength)
	}

	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		}
	}

	if v.config.RequirePasswordUpper && !hasUpper {
		return fmt.Errorf("must contain at least one uppercase letter")
	}
	if v.config.RequirePasswordLower && !hasLower {
		return fmt.Errorf("must contain at least one lowercase letter")
	}
	if v.config.RequirePasswordNumber && !hasNumber {
		return fmt.Errorf("must contain at least one number")
	}
	return nil
}
