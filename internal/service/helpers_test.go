// internal/service/helpers_test.go
package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/nestlist/nestlist/ent/generated"
	"github.com/nestlist/nestlist/internal/config"
	"github.com/nestlist/nestlist/internal/middleware"
	"github.com/nestlist/nestlist/internal/repository"
	"github.com/nestlist/nestlist/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB opens a fresh in-memory database and returns both the Ent
// client and the raw pool, mirroring how the server shares it with the
// sqlx readers.
func setupTestDB(t *testing.T) (*ent.Client, *sql.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)

	// Keep the shared in-memory database alive between queries.
	db.SetMaxIdleConns(2)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, db
}

func createTestUser(t *testing.T, client *ent.Client, email, username string) *ent.User {
	passwordManager := auth.NewPasswordManager()
	hashedPassword, err := passwordManager.HashPassword("TestPass123")
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(email).
		SetUsername(username).
		SetPasswordHash(hashedPassword).
		Save(context.Background())
	require.NoError(t, err)

	return u
}

// authContext builds a context carrying the user id the way the auth
// interceptor does.
func authContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.ContextKeyUserID, userID.String())
}

func createTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(
		"test-access-secret",
		"test-refresh-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func createTestSecurityConfig() config.SecurityConfig {
	return config.SecurityConfig{
		MaxLoginAttempts:       3,
		AccountLockoutDuration: 15 * time.Minute,
	}
}

// testEnv bundles the services under test against one database.
type testEnv struct {
	client      *ent.Client
	authService *AuthService
	listService *ListService
	taskService *TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	client, db := setupTestDB(t)

	activityLogger := NewActivityLogger(NewActivityService(client))
	taskRepo := repository.NewEntTaskRepository(client)
	statsRepo := repository.NewStatsRepository(db, "sqlite3")

	return &testEnv{
		client: client,
		authService: NewAuthService(
			client,
			createTestTokenManager(),
			activityLogger,
			createTestSecurityConfig(),
		),
		listService: NewListService(client, taskRepo, statsRepo, activityLogger),
		taskService: NewTaskService(client, taskRepo, activityLogger),
	}
}
