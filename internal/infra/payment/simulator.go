package payment

import (
	"context"
	"log/slog"
	"time"

	"fieldbook/internal/domain/payment"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"
)

// Simulator accepts every valid payment after a fixed delay. There is no
// failure path besides validation and cancellation.
type Simulator struct {
	delay  time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewSimulator(delay time.Duration, clk clock.Clock, logger *slog.Logger) *Simulator {
	return &Simulator{delay: delay, clock: clk, logger: logger}
}

func (s *Simulator) Pay(ctx context.Context, amount int64, details payment.Details) (payment.Receipt, error) {
	details = details.WithDefaults()
	if err := details.Validate(); err != nil {
		return payment.Receipt{}, errs.Mark(err, errs.ErrPaymentDetailsEmpty)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return payment.Receipt{}, errs.Wrap(ctx.Err(), "payment interrupted")
		case <-timer.C:
		}
	}

	s.logger.Info("payment accepted", "method", details.Method, "amount", amount)
	return payment.Receipt{Method: details.Method, Amount: amount, PaidAt: s.clock.Now()}, nil
}
