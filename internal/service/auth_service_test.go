// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	authv1 "github.com/nestlist/nestlist/api/proto/auth/v1/generated"
	ent "github.com/nestlist/nestlist/ent/generated"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		request       *authv1.RegisterRequest
		setupFunc     func(*testing.T, *ent.Client)
		wantErr       bool
		expectedCode  codes.Code
		expectedEmail string
	}{
		{
			name: "successful registration",
			request: &authv1.RegisterRequest{
				Email:    "newuser@example.com",
				Username: "newuser",
				Password: "SecurePass123",
			},
			expectedEmail: "newuser@example.com",
		},
		{
			name: "duplicate email",
			request: &authv1.RegisterRequest{
				Email:    "taken@example.com",
				Username: "someoneelse",
				Password: "SecurePass123",
			},
			setupFunc: func(t *testing.T, client *ent.Client) {
				createTestUser(t, client, "taken@example.com", "taken")
			},
			wantErr:      true,
			expectedCode: codes.AlreadyExists,
		},
		{
			name: "duplicate username",
			request: &authv1.RegisterRequest{
				Email:    "fresh@example.com",
				Username: "taken",
				Password: "SecurePass123",
			},
			setupFunc: func(t *testing.T, client *ent.Client) {
				createTestUser(t, client, "taken@example.com", "taken")
			},
			wantErr:      true,
			expectedCode: codes.AlreadyExists,
		},
		{
			name: "weak password",
			request: &authv1.RegisterRequest{
				Email:    "weak@example.com",
				Username: "weakuser",
				Password: "weak",
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setupFunc != nil {
				tt.setupFunc(t, env.client)
			}

			resp, err := env.authService.Register(context.Background(), tt.request)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.expectedEmail, resp.User.Email)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
			assert.Greater(t, resp.ExpiresIn, int64(0))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name         string
		request      *authv1.LoginRequest
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name: "successful login with email",
			request: &authv1.LoginRequest{
				Email:    "test@example.com",
				Password: "TestPass123",
			},
		},
		{
			name: "successful login with username",
			request: &authv1.LoginRequest{
				Email:    "testuser",
				Password: "TestPass123",
			},
		},
		{
			name: "invalid password",
			request: &authv1.LoginRequest{
				Email:    "test@example.com",
				Password: "WrongPass123",
			},
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
		{
			name: "non-existent user",
			request: &authv1.LoginRequest{
				Email:    "nobody@example.com",
				Password: "TestPass123",
			},
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			createTestUser(t, env.client, "test@example.com", "testuser")

			resp, err := env.authService.Login(context.Background(), tt.request)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.RefreshToken)
			assert.False(t, resp.AccountLocked)
		})
	}
}

func TestAuthService_Login_LockoutAfterFailedAttempts(t *testing.T) {
	env := newTestEnv(t)
	createTestUser(t, env.client, "test@example.com", "testuser")
	ctx := context.Background()

	badRequest := &authv1.LoginRequest{
		Email:    "test@example.com",
		Password: "WrongPass123",
	}

	// Attempts below the limit fail as plain bad credentials.
	for i := 0; i < createTestSecurityConfig().MaxLoginAttempts-1; i++ {
		_, err := env.authService.Login(ctx, badRequest)
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	}

	// The attempt at the limit locks the account.
	resp, err := env.authService.Login(ctx, badRequest)
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	require.NotNil(t, resp)
	assert.True(t, resp.AccountLocked)
	assert.NotNil(t, resp.LockedUntil)

	// Even the right password is rejected while locked.
	resp, err = env.authService.Login(ctx, &authv1.LoginRequest{
		Email:    "test@example.com",
		Password: "TestPass123",
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.True(t, resp.AccountLocked)
}

func TestAuthService_RefreshToken(t *testing.T) {
	env := newTestEnv(t)
	createTestUser(t, env.client, "test@example.com", "testuser")
	ctx := context.Background()

	loginResp, err := env.authService.Login(ctx, &authv1.LoginRequest{
		Email:    "test@example.com",
		Password: "TestPass123",
	})
	require.NoError(t, err)

	refreshResp, err := env.authService.RefreshToken(ctx, &authv1.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)
	assert.Greater(t, refreshResp.ExpiresIn, int64(0))
}

func TestAuthService_RefreshToken_RevokedAfterLogout(t *testing.T) {
	env := newTestEnv(t)
	u := createTestUser(t, env.client, "test@example.com", "testuser")
	ctx := context.Background()

	loginResp, err := env.authService.Login(ctx, &authv1.LoginRequest{
		Email:    "test@example.com",
		Password: "TestPass123",
	})
	require.NoError(t, err)

	_, err = env.authService.Logout(authContext(u.ID), &authv1.LogoutRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.NoError(t, err)

	_, err = env.authService.RefreshToken(ctx, &authv1.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthService_GetMe(t *testing.T) {
	env := newTestEnv(t)
	u := createTestUser(t, env.client, "test@example.com", "testuser")

	resp, err := env.authService.GetMe(authContext(u.ID), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), resp.User.Id)
	assert.Equal(t, "test@example.com", resp.User.Email)

	_, err = env.authService.GetMe(context.Background(), &emptypb.Empty{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
