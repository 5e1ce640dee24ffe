package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
	"github.com/hiddenhaul/haul/internal/client/repositories/localstore"
	"github.com/hiddenhaul/haul/internal/client/session"
	"github.com/hiddenhaul/haul/internal/logging"

	_ "modernc.org/sqlite"
)

func setupSession(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE localstore (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	repo := localstore.NewSQLiteRepository(db)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return session.NewStore(repo, log)
}

func TestAuthService_Login_EstablishesSession(t *testing.T) {
	sess := setupSession(t)
	client := &stubClient{
		loginFn: func(ctx context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "s@test.com", email)
			assert.Equal(t, "pw", password)
			return models.User{ID: 2, Name: "Sal", Role: models.RoleSeller, Token: "tok"}, nil
		},
	}

	svc := NewAuthService(client, sess)
	u, err := svc.Login(context.Background(), "s@test.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, "Sal", u.Name)
	assert.True(t, sess.IsLoggedIn())
	assert.Equal(t, models.RoleSeller, sess.Role())
	assert.Equal(t, "tok", sess.Token())
}

func TestAuthService_Login_APIFailureLeavesSessionGuest(t *testing.T) {
	sess := setupSession(t)
	client := &stubClient{
		loginFn: func(ctx context.Context, email, password string) (models.User, error) {
			return models.User{}, errors.New("invalid credentials")
		},
	}

	svc := NewAuthService(client, sess)
	_, err := svc.Login(context.Background(), "x@test.com", []byte("bad"))
	require.Error(t, err)

	assert.False(t, sess.IsLoggedIn())
	assert.Equal(t, models.RoleGuest, sess.Role())
}

func TestAuthService_Register_EstablishesSession(t *testing.T) {
	sess := setupSession(t)
	client := &stubClient{
		registerFn: func(ctx context.Context, reg api.Registration) (models.User, error) {
			assert.Equal(t, "New", reg.Name)
			return models.User{ID: 9, Name: "New", Role: models.RoleUser, Token: "fresh"}, nil
		},
	}

	svc := NewAuthService(client, sess)
	u, err := svc.Register(context.Background(), api.Registration{Name: "New", Email: "n@test.com"})
	require.NoError(t, err)

	assert.Equal(t, 9, u.ID)
	assert.True(t, sess.IsLoggedIn())
}

func TestAuthService_LogoutAndRestore(t *testing.T) {
	sess := setupSession(t)
	client := &stubClient{
		loginFn: func(ctx context.Context, email, password string) (models.User, error) {
			return models.User{ID: 1, Name: "A", Role: models.RoleUser, Token: "t"}, nil
		},
	}
	svc := NewAuthService(client, sess)
	ctx := context.Background()

	_, err := svc.Login(ctx, "a@test.com", []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, sess.IsLoggedIn())

	// nothing persisted anymore, restore stays guest
	require.NoError(t, svc.Restore(ctx))
	assert.False(t, sess.IsLoggedIn())
}
