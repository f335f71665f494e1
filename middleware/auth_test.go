package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riquelima/gourmetgo/auth"
	"github.com/riquelima/gourmetgo/cart"
	orderControllers "github.com/riquelima/gourmetgo/controllers/order"
	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/routes"
	"github.com/riquelima/gourmetgo/storage"
	"github.com/riquelima/gourmetgo/store"
)

const testSecret = "test-secret"

func newGatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := store.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, s.Seed("1234"))

	kv := storage.NewMemory()
	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Store: s,
		Carts: cart.NewManager(kv),
		Auth:  auth.NewService(s, kv, testSecret),
		Hub:   orderControllers.NewHub(),
	})
	return r
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := auth.GenerateToken([]byte(testSecret), models.User{
		ID:    string(role) + "-test-user",
		Email: "test@gourmetgo.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaffRoutes_RejectMissingOrBadToken(t *testing.T) {
	r := newGatedRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/orders", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/orders", "not-a-token").Code)
}

func TestStaffRoutes_AcceptBothStaffRoles(t *testing.T) {
	r := newGatedRouter(t)

	assert.Equal(t, http.StatusOK, get(r, "/orders", tokenFor(t, models.RoleAttendant)).Code)
	assert.Equal(t, http.StatusOK, get(r, "/orders", tokenFor(t, models.RoleAdmin)).Code)
}

func TestAdminRoutes_RejectNonAdmins(t *testing.T) {
	r := newGatedRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin/dashboard/summary", "").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin/dashboard/summary", tokenFor(t, models.RoleAttendant)).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin/dashboard/summary", tokenFor(t, models.RoleAdmin)).Code)
}

func TestPublicRoutes_NeedNoToken(t *testing.T) {
	r := newGatedRouter(t)

	assert.Equal(t, http.StatusOK, get(r, "/dishes", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/settings", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/orders/order1", "").Code)
}
