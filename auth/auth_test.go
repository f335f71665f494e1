package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/storage"
	"github.com/riquelima/gourmetgo/store"
)

func newTestService(t *testing.T) (*Service, *storage.Memory) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	st, err := store.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, st.Seed("1234"))
	sessions := storage.NewMemory()
	return NewService(st, sessions, "test-secret"), sessions
}

func TestSignIn_WrongPasswordFailsAndPersistsNothing(t *testing.T) {
	svc, sessions := newTestService(t)

	_, _, err := svc.SignIn(context.Background(), "admin@gourmetgo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := sessions.Get(sessionKey("admin-user-id"))
	assert.False(t, ok)
	assert.Nil(t, svc.CurrentUser(context.Background(), "admin-user-id"))
}

func TestSignIn_UnknownEmailFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.SignIn(context.Background(), "nobody@gourmetgo.com", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_PersistsSessionAndIssuesToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.SignIn(ctx, "admin@gourmetgo.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.PasswordHash)

	claims, err := ValidateToken([]byte("test-secret"), token)
	require.NoError(t, err)
	assert.Equal(t, "admin-user-id", claims.Subject)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	current := svc.CurrentUser(ctx, "admin-user-id")
	require.NotNil(t, current)
	assert.Equal(t, "admin@gourmetgo.com", current.Email)
}

func TestSignOut_ClearsSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.SignIn(ctx, "attendant@gourmetgo.com", "1234")
	require.NoError(t, err)
	require.NotNil(t, svc.CurrentUser(ctx, "attendant-user-id"))

	require.NoError(t, svc.SignOut(ctx, "attendant-user-id"))
	assert.Nil(t, svc.CurrentUser(ctx, "attendant-user-id"))
}

func TestSessions_AreIsolatedPerUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.SignIn(ctx, "admin@gourmetgo.com", "1234")
	require.NoError(t, err)
	_, _, err = svc.SignIn(ctx, "attendant@gourmetgo.com", "1234")
	require.NoError(t, err)

	admin := svc.CurrentUser(ctx, "admin-user-id")
	require.NotNil(t, admin)
	assert.Equal(t, "admin@gourmetgo.com", admin.Email)

	attendant := svc.CurrentUser(ctx, "attendant-user-id")
	require.NotNil(t, attendant)
	assert.Equal(t, "attendant@gourmetgo.com", attendant.Email)

	// Signing one user out never touches the other's session, and an
	// unknown caller sees nothing.
	require.NoError(t, svc.SignOut(ctx, "attendant-user-id"))
	assert.Nil(t, svc.CurrentUser(ctx, "attendant-user-id"))
	assert.NotNil(t, svc.CurrentUser(ctx, "admin-user-id"))
	assert.Nil(t, svc.CurrentUser(ctx, "someone-else"))
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), models.User{ID: "u1", Role: models.RoleAttendant})
	require.NoError(t, err)

	_, err = ValidateToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestRoleRedirectPaths(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", models.RoleAdmin.RedirectPath())
	assert.Equal(t, "/attendant/orders", models.RoleAttendant.RedirectPath())
	assert.Equal(t, "/", models.RoleCustomer.RedirectPath())
}
