// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "github.com/nestlist/nestlist/api/proto/auth/v1/generated"
	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/ent/generated/user"
	"github.com/nestlist/nestlist/internal/config"
	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/pkg/auth"
)

type AuthService struct {
	authv1.UnimplementedAuthServiceServer
	client          *ent.Client
	tokenManager    *auth.TokenManager
	passwordManager *auth.PasswordManager
	activityLogger  *ActivityLogger
	securityConfig  config.SecurityConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(
	client *ent.Client,
	tokenManager *auth.TokenManager,
	activityLogger *ActivityLogger,
	securityConfig config.SecurityConfig,
) *AuthService {
	return &AuthService{
		client:          client,
		tokenManager:    tokenManager,
		passwordManager: auth.NewPasswordManager(),
		activityLogger:  activityLogger,
		securityConfig:  securityConfig,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.RegisterResponse, error) {
	email := strings.ToLower(req.Email)
	username := strings.ToLower(req.Username)

	// Check if user already exists
	exists, err := s.client.User.Query().
		Where(
			user.Or(
				user.EmailEQ(email),
				user.UsernameEQ(username),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to check user existence")
	}
	if exists {
		return nil, status.Error(codes.AlreadyExists, "user with this email or username already exists")
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	newUser, err := s.client.User.Create().
		SetEmail(email).
		SetUsername(username).
		SetPasswordHash(hashedPassword).
		SetRole(user.RoleUser).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create user")
	}

	accessToken, refreshToken, expiresIn, err := s.tokenManager.GenerateTokenPair(
		newUser.ID.String(),
		newUser.Email,
		newUser.Username,
		string(newUser.Role),
	)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate tokens")
	}

	newUser, err = newUser.Update().
		SetRefreshToken(refreshToken).
		SetRefreshTokenExpiresAt(time.Now().Add(7 * 24 * time.Hour)).
		Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to save refresh token")
	}

	return &authv1.RegisterResponse{
		User:         convertUserToProto(newUser),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.LoginResponse, error) {
	clientInfo := middleware.GetClientInfoFromContext(ctx)

	// The email field also accepts a username
	loginID := strings.ToLower(req.Email)
	foundUser, err := s.client.User.Query().
		Where(
			user.Or(
				user.EmailEQ(loginID),
				user.UsernameEQ(loginID),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if lerr := s.activityLogger.LogLoginFailed(ctx, loginID, "user not found"); lerr != nil {
				log.Printf("Failed to record login failure: %v", lerr)
			}
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		return nil, status.Error(codes.Internal, "failed to find user")
	}

	if foundUser.AccountLockedUntil != nil && foundUser.AccountLockedUntil.After(time.Now()) {
		return &authv1.LoginResponse{
			AccountLocked: true,
			LockedUntil:   timestamppb.New(*foundUser.AccountLockedUntil),
		}, status.Error(codes.PermissionDenied, fmt.Sprintf("account is locked until %s", foundUser.AccountLockedUntil.Format(time.RFC3339)))
	}

	if !foundUser.IsActive {
		return nil, status.Error(codes.PermissionDenied, "account is deactivated")
	}

	if err := s.passwordManager.ComparePassword(foundUser.PasswordHash, req.Password); err != nil {
		failedAttempts := foundUser.FailedLoginAttempts + 1
		update := foundUser.Update().SetFailedLoginAttempts(failedAttempts)

		if failedAttempts >= s.securityConfig.MaxLoginAttempts {
			lockUntil := time.Now().Add(s.securityConfig.AccountLockoutDuration)
			update = update.SetAccountLockedUntil(lockUntil)

			if lerr := s.activityLogger.LogAccountLocked(ctx, foundUser.ID,
				fmt.Sprintf("max login attempts (%d) exceeded", s.securityConfig.MaxLoginAttempts)); lerr != nil {
				log.Printf("Failed to record account lock: %v", lerr)
			}

			if _, err := update.Save(ctx); err != nil {
				log.Printf("Failed to update failed login attempts: %v", err)
			}

			return &authv1.LoginResponse{
					AccountLocked: true,
					LockedUntil:   timestamppb.New(lockUntil),
				}, status.Error(codes.PermissionDenied,
					fmt.Sprintf("account locked due to %d failed login attempts. Try again after %s",
						s.securityConfig.MaxLoginAttempts,
						s.securityConfig.AccountLockoutDuration))
		}

		if _, err := update.Save(ctx); err != nil {
			log.Printf("Failed to update failed login attempts: %v", err)
		}

		if lerr := s.activityLogger.LogLoginFailed(ctx, loginID,
			fmt.Sprintf("invalid password (attempt %d of %d)", failedAttempts, s.securityConfig.MaxLoginAttempts)); lerr != nil {
			log.Printf("Failed to record login failure: %v", lerr)
		}

		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	accessToken, refreshToken, expiresIn, err := s.tokenManager.GenerateTokenPair(
		foundUser.ID.String(),
		foundUser.Email,
		foundUser.Username,
		string(foundUser.Role),
	)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate tokens")
	}

	foundUser, err = foundUser.Update().
		SetRefreshToken(refreshToken).
		SetRefreshTokenExpiresAt(time.Now().Add(7 * 24 * time.Hour)).
		SetLastLogin(time.Now()).
		SetLastLoginIP(clientInfo.IPAddress).
		SetFailedLoginAttempts(0).
		ClearAccountLockedUntil().
		Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to update user")
	}

	if lerr := s.activityLogger.LogLoginSuccess(ctx, foundUser.ID); lerr != nil {
		log.Printf("Failed to record login: %v", lerr)
	}

	return &authv1.LoginResponse{
		User:         convertUserToProto(foundUser),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new access token
func (s *AuthService) RefreshToken(ctx context.Context, req *authv1.RefreshTokenRequest) (*authv1.RefreshTokenResponse, error) {
	claims, err := s.tokenManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	foundUser, err := s.client.User.Get(ctx, userID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	// The token must match the one currently on record
	if foundUser.RefreshToken != req.RefreshToken {
		return nil, status.Error(codes.Unauthenticated, "refresh token has been revoked")
	}
	if foundUser.RefreshTokenExpiresAt != nil && foundUser.RefreshTokenExpiresAt.Before(time.Now()) {
		return nil, status.Error(codes.Unauthenticated, "refresh token has expired")
	}
	if !foundUser.IsActive {
		return nil, status.Error(codes.PermissionDenied, "account is deactivated")
	}

	accessToken, expiresIn, err := s.tokenManager.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to generate access token")
	}

	return &authv1.RefreshTokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// Logout revokes the user's refresh token
func (s *AuthService) Logout(ctx context.Context, req *authv1.LogoutRequest) (*emptypb.Empty, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	err = s.client.User.UpdateOneID(userID).
		ClearRefreshToken().
		ClearRefreshTokenExpiresAt().
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, status.Error(codes.Internal, "failed to revoke refresh token")
	}

	return &emptypb.Empty{}, nil
}

// GetMe returns the authenticated user's account
func (s *AuthService) GetMe(ctx context.Context, _ *emptypb.Empty) (*authv1.GetMeResponse, error) {
	userID, err := authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	foundUser, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Error(codes.Internal, "failed to get user")
	}

	return &authv1.GetMeResponse{
		User: convertUserToProto(foundUser),
	}, nil
}

// Helper functions

func convertUserToProto(u *ent.User) *authv1.User {
	proto := &authv1.User{
		Id:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		Role:      convertRoleToProto(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}

	if u.LastLogin != nil {
		proto.LastLogin = timestamppb.New(*u.LastLogin)
	}
	return proto
}

func convertRoleToProto(role user.Role) authv1.UserRole {
	switch role {
	case user.RoleUser:
		return authv1.UserRole_USER_ROLE_USER
	case user.RoleAdmin:
		return authv1.UserRole_USER_ROLE_ADMIN
	default:
		return authv1.UserRole_USER_ROLE_UNSPECIFIED
	}
}
