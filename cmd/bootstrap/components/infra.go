package components

import (
	"context"
	"log/slog"

	"fieldbook/internal/infra/catalog"
	"fieldbook/internal/infra/messaging"
	"fieldbook/internal/infra/payment"
	"fieldbook/internal/infra/remote"
	"fieldbook/internal/infra/repository"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/idgen"
	"fieldbook/internal/pkg/simnet"
	"fieldbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	infraBaseOption,
	storesModule,
	fx.Provide(
		NewBackend,
		NewEventPublisher,
		NewPaymentSimulator,
	),
)

var infraBaseOption = fx.Provide(
	clock.NewRealClock,
	idgen.NewRandomGenerator,
)

var storesModule = fx.Module("infra/stores",
	fx.Provide(
		catalog.NewSeededStore,
		storage.NewOwnerFieldsStore,
		storage.NewRenterBookingsStore,
	),
)

// NewBackend picks the booking backend once at startup. The remote backend has
// real latency, so only the local one runs behind the simulated network.
func NewBackend(
	cfg config.Config,
	catalogStore *catalog.Store,
	ownerStore *storage.OwnerFieldsStore,
	clk clock.Clock,
	ids idgen.Generator,
	logger *slog.Logger,
) (shared.Backend, simnet.Network) {
	if cfg.Backend.UseRealBackend {
		logger.Info("Using remote booking backend", "url", cfg.Backend.URL)
		return remote.NewClient(cfg.Backend, nil, logger), simnet.Immediate()
	}

	local := repository.NewLocalBackend(catalogStore, ownerStore, clk, ids, cfg.Verification.MaxAttempts, logger)
	if !cfg.Simnet.Enabled {
		return local, simnet.Immediate()
	}
	policy := simnet.DefaultPolicy()
	policy.Scale = cfg.Simnet.Scale
	policy.Jitter = cfg.Simnet.Jitter
	policy.FailureRate = cfg.Simnet.FailureRate
	return local, simnet.New(policy)
}

// NewEventPublisher publishes domain events to RabbitMQ when RABBITMQ_URL is set.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.Messaging.RabbitURL == "" {
		return messaging.NopPublisher{}, nil
	}

	pub, err := messaging.NewRabbitPublisher(cfg.Messaging.RabbitURL, cfg.Messaging.Exchange, clk, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pub.Close()
			return nil
		},
	})
	return pub, nil
}

func NewPaymentSimulator(cfg config.Config, clk clock.Clock, logger *slog.Logger) *payment.Simulator {
	return payment.NewSimulator(cfg.Payment.Delay, clk, logger)
}
