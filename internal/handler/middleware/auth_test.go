//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/cookie"
	"fieldbook/internal/usecase"
	"fieldbook/tests/common/builder"
	usecasemock "fieldbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *middleware.AuthMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	renter := *builder.NewUserBuilder().MustBuild()
	owner := *builder.NewUserBuilder().WithID("owner1").AsOwner().MustBuild()
	validator.EXPECT().Authenticate(gomock.Any(), "renter").Return(usecase.Principal{User: renter, SessionID: "s1"}, nil).AnyTimes()
	validator.EXPECT().Authenticate(gomock.Any(), "owner").Return(usecase.Principal{User: owner, SessionID: "s2"}, nil).AnyTimes()
	validator.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(usecase.Principal{}, usecase.ErrTokenValidation).AnyTimes()

	return gin.New(), middleware.NewAuthMiddleware(validator)
}

func whoami(c *gin.Context) {
	id, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
}

func do(r *gin.Engine, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func TestRequireAccess(t *testing.T) {
	r, m := newRouter(t)
	r.GET("/auth", m.RequireAuth(), whoami)
	r.GET("/owner", m.RequireOwner(), whoami)

	cases := []struct {
		name   string
		path   string
		auth   func(*http.Request)
		status int
	}{
		{name: "anonymous on an authenticated route", path: "/auth", status: http.StatusUnauthorized},
		{name: "forged token", path: "/auth", auth: bearer("forged"), status: http.StatusUnauthorized},
		{name: "renter on an authenticated route", path: "/auth", auth: bearer("renter"), status: http.StatusOK},
		{name: "renter on an owner route", path: "/owner", auth: bearer("renter"), status: http.StatusForbidden},
		{name: "anonymous on an owner route", path: "/owner", status: http.StatusUnauthorized},
		{name: "owner on an owner route", path: "/owner", auth: bearer("owner"), status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.path, tc.auth)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}

	t.Run("401 carries a login redirect", func(t *testing.T) {
		w := do(r, "/auth", nil)
		assert.JSONEq(t, `{"error":{"message":"Access token required"},"detail":{"redirect":"/login"}}`, w.Body.String())
	})
}

func TestTokenFromCookie(t *testing.T) {
	r, m := newRouter(t)
	r.GET("/auth", m.RequireAuth(), whoami)

	w := do(r, "/auth", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "owner"})
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"owner1","role":"owner"}`, w.Body.String())
}

func TestRequireSelf(t *testing.T) {
	r, m := newRouter(t)
	r.GET("/users/:userId", m.RequireAuth(), m.RequireSelf("userId"), whoami)

	assert.Equal(t, http.StatusOK, do(r, "/users/u1", bearer("renter")).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/users/owner1", bearer("renter")).Code)
}

func TestOptionalAuth(t *testing.T) {
	r, m := newRouter(t)
	r.GET("/maybe", m.OptionalAuth(), whoami)

	assert.JSONEq(t, `{"id":"","role":""}`, do(r, "/maybe", nil).Body.String())
	assert.JSONEq(t, `{"id":"u1","role":"user"}`, do(r, "/maybe", bearer("renter")).Body.String())
	assert.JSONEq(t, `{"id":"","role":""}`, do(r, "/maybe", bearer("forged")).Body.String())
}

func TestClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cid", func(c *gin.Context) { c.String(http.StatusOK, middleware.ClientID(c)) })

	assert.Equal(t, "default", do(r, "/cid", nil).Body.String())
	assert.Equal(t, "from-cookie", do(r, "/cid", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.ClientIDCookieName, Value: "from-cookie"})
	}).Body.String())
	assert.Equal(t, "from-header", do(r, "/cid", func(req *http.Request) {
		req.Header.Set(middleware.ClientIDHeader, "from-header")
		req.AddCookie(&http.Cookie{Name: cookie.ClientIDCookieName, Value: "from-cookie"})
	}).Body.String())
}

