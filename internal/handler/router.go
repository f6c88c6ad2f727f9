package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth       *api.AuthHandler
	Field      *api.FieldHandler
	Booking    *api.BookingHandler
	Checkout   *api.CheckoutHandler
	Owner      *api.OwnerHandler
	Preference *api.PreferenceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/home", Handler: h.Field.Home},
			{Method: http.MethodGet, Path: "/fields", Handler: h.Field.List},
			{Method: http.MethodGet, Path: "/fields/search", Handler: h.Field.Search},
			{Method: http.MethodGet, Path: "/fields/:id", Handler: h.Field.Get},
			{Method: http.MethodGet, Path: "/ad-packages", Handler: h.Field.AdPackages},
			{Method: http.MethodGet, Path: "/time-slots", Handler: h.Field.TimeSlots},
			{Method: http.MethodGet, Path: "/translations", Handler: h.Preference.Translations},
			{Method: http.MethodGet, Path: "/preferences", Handler: h.Preference.Get},
			{Method: http.MethodPut, Path: "/preferences", Handler: h.Preference.Update},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/send-code", Handler: h.Auth.SendCode},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		renter := apiGroup.Group("")
		renter.Use(authMiddleware.RequireAuth())
		{
			addRoutes(renter, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Booking.Mine},
				{
					Method:  http.MethodGet,
					Path:    "/users/:userId/bookings",
					Handler: h.Booking.ForUser,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireSelf("userId")},
				},
			})
		}

		checkouts := apiGroup.Group("/checkouts")
		checkouts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkouts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Checkout.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Checkout.Update},
				{Method: http.MethodPost, Path: "/:id/continue", Handler: h.Checkout.Continue},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Checkout.Cancel},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: h.Checkout.Pay},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Checkout.Close},
			})
		}

		owner := apiGroup.Group("/owner/:ownerId")
		owner.Use(authMiddleware.RequireOwner(), authMiddleware.RequireSelf("ownerId"))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/fields", Handler: h.Owner.ListFields},
				{Method: http.MethodPost, Path: "/fields", Handler: h.Owner.CreateField},
				{Method: http.MethodPut, Path: "/fields/:fieldId", Handler: h.Owner.UpdateField},
				{Method: http.MethodDelete, Path: "/fields/:fieldId", Handler: h.Owner.DeleteField},
				{Method: http.MethodPost, Path: "/fields/:fieldId/promote", Handler: h.Owner.Promote},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Owner.Bookings},
				{Method: http.MethodPost, Path: "/bookings/:bookingId/verify", Handler: h.Owner.Verify},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Owner.Stats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
