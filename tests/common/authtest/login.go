//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/pkg/cookie"
	"fieldbook/tests/common/builder"
	"fieldbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RegisterUser signs up through the API and returns the access token and the new identity.
func RegisterUser(t *testing.T, router *gin.Engine, reg *builder.RegisterBuilder) (string, resdto.AuthResponse) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register", reg.BuildDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	var res resdto.AuthResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.Equal(t, accessCookie.Value, res.AccessToken)

	return accessCookie.Value, res
}

func LogoutUser(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
