package components

import (
	"fieldbook/internal/handler"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFieldHandler,
		api.NewBookingHandler,
		api.NewCheckoutHandler,
		api.NewOwnerHandler,
		api.NewPreferenceHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth       *api.AuthHandler
	Field      *api.FieldHandler
	Booking    *api.BookingHandler
	Checkout   *api.CheckoutHandler
	Owner      *api.OwnerHandler
	Preference *api.PreferenceHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:       p.Auth,
		Field:      p.Field,
		Booking:    p.Booking,
		Checkout:   p.Checkout,
		Owner:      p.Owner,
		Preference: p.Preference,
	}
}
