package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/utils"
)

type fixedSessions string

func (s fixedSessions) Active(_ context.Context, id string) (bool, error) {
	return id != "" && id == string(s), nil
}

func guarded(sessions SessionChecker) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFrom(r)
		w.Write([]byte(claims.Email))
	})
	return RequestLogger(AuthMiddleware(AdminMiddleware(sessions)(ok)))
}

func do(h http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdminGuard(t *testing.T) {
	utils.JwtKey = []byte("middleware-test")
	h := guarded(fixedSessions("s1"))

	token, err := utils.GenerateJWT("admin@hugodiaz.cl", utils.RoleAdmin, "s1")
	require.NoError(t, err)
	rec := do(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@hugodiaz.cl", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, "Bearer garbage").Code)

	stale, err := utils.GenerateJWT("admin@hugodiaz.cl", utils.RoleAdmin, "s0")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(h, "Bearer "+stale).Code)

	customer, err := utils.GenerateJWT("someone@example.cl", "customer", "s1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(h, "Bearer "+customer).Code)
}
