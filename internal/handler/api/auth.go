package api

import (
	"errors"
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/cookie"
	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errNoPrincipal = errors.New("no authenticated principal in context")

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cfg:         cfg,
	}
}

// @Summary Send SMS code
// @Description Start registration for a phone number. Runs in test mode: any 6 digits are accepted later.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SendCodeRequest true "Phone number"
// @Success 200 {object} usecase.SendCodeResult
// @Failure 400 {object} httperr.Response
// @Router /api/auth/send-code [post]
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req reqdto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.authUseCase.SendCode(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to send code")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Register
// @Description Verify the SMS code, create the identity and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.authUseCase.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err, "Registration failed")
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, res.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, resdto.FromAuthResult(res))
}

// @Summary Logout
// @Description End the current session; every token issued for it stops working
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), principal.SessionID); err != nil {
		abortWithUseCaseError(c, err, "Logout failed")
		return
	}
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the identity held by the current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}

	u, err := h.authUseCase.GetCurrentUser(c.Request.Context(), principal.SessionID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, u)
}
