package components

import (
	"log/slog"

	"fieldbook/internal/infra/payment"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/idgen"
	"fieldbook/internal/usecase"
	"fieldbook/internal/usecase/session"
	"fieldbook/internal/usecase/workflow"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseSessionModule,
	usecaseBookingModule,
	usecaseWorkflowModule,
	usecaseValidatorsModule,
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		fx.Annotate(
			session.NewStore,
			fx.As(new(usecase.SessionStore)),
		),
		usecase.NewAuthUseCase,
		usecase.NewPreferenceUseCase,
	),
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		usecase.NewBookingService,
		NewRenterBookings,
	),
)

var usecaseWorkflowModule = fx.Module("usecase/workflow",
	fx.Provide(
		NewCheckoutRegistry,
		NewCheckoutService,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewRenterBookings(bookings usecase.BookingService, store *storage.RenterBookingsStore, logger *slog.Logger) usecase.RenterBookings {
	return usecase.NewRenterBookings(bookings, store, logger)
}

func NewCheckoutRegistry(cfg config.Config, clk clock.Clock) *workflow.Registry {
	return workflow.NewRegistry(clk, cfg.Checkout.IdleTTL)
}

func NewCheckoutService(
	registry *workflow.Registry,
	bookings usecase.BookingService,
	payments *payment.Simulator,
	renter usecase.RenterBookings,
	ids idgen.Generator,
	clk clock.Clock,
	logger *slog.Logger,
) workflow.Service {
	return workflow.NewService(registry, bookings, payments, renter, ids, clk, logger)
}
