// Package simnet models the latency and failure behaviour of a network call for
// backends that are really in-process.
package simnet

import (
	"context"
	"math/rand"
	"time"

	"fieldbook/internal/pkg/errs"
)

var ErrSimulatedFailure = errs.New("simulated network failure")

type Op string

const (
	OpListListings       Op = "listListings"
	OpGetListing         Op = "getListing"
	OpSearchListings     Op = "searchListings"
	OpListAdPackages     Op = "listAdPackages"
	OpListTimeSlots      Op = "listTimeSlots"
	OpCreateBooking      Op = "createBooking"
	OpGetBookingsForUser Op = "getBookingsForUser"
	OpGetOwnerFields     Op = "getOwnerFields"
	OpCreateOwnerField   Op = "createOwnerField"
	OpUpdateOwnerField   Op = "updateOwnerField"
	OpDeleteOwnerField   Op = "deleteOwnerField"
	OpGetOwnerBookings   Op = "getOwnerBookings"
	OpVerifyBooking      Op = "verifyBooking"
	OpGetOwnerStats      Op = "getOwnerStats"
	OpPromoteField       Op = "promoteField"
)

// ReadOnly operations are never subject to injected failures.
func (o Op) ReadOnly() bool {
	switch o {
	case OpListListings, OpGetListing, OpSearchListings, OpListAdPackages, OpListTimeSlots:
		return true
	default:
		return false
	}
}

// DefaultDelays mirrors the latency profile the booking front end was tuned against.
var DefaultDelays = map[Op]time.Duration{
	OpCreateBooking:    800 * time.Millisecond,
	OpCreateOwnerField: 600 * time.Millisecond,
	OpGetOwnerBookings: 300 * time.Millisecond,
	OpVerifyBooking:    300 * time.Millisecond,
	OpGetOwnerStats:    200 * time.Millisecond,
}

const DefaultDelay = 400 * time.Millisecond

type Policy struct {
	Delays       map[Op]time.Duration
	DefaultDelay time.Duration
	Scale        float64
	Jitter       time.Duration
	FailureRate  float64
	// FailOps always fail, regardless of FailureRate. Read-only ops excluded.
	FailOps map[Op]bool
}

func DefaultPolicy() Policy {
	return Policy{
		Delays:       DefaultDelays,
		DefaultDelay: DefaultDelay,
		Scale:        1.0,
	}
}

// Network delays an operation and decides whether it fails.
type Network interface {
	Wait(ctx context.Context, op Op) error
}

type Simulator struct {
	policy Policy
	roll   func() float64
	jitter func(n int64) int64
}

func New(policy Policy) *Simulator {
	if policy.Scale <= 0 {
		policy.Scale = 1.0
	}
	return &Simulator{
		policy: policy,
		roll:   rand.Float64,
		jitter: rand.Int63n,
	}
}

// Immediate returns a simulator with no delay and no failures.
func Immediate() *Simulator {
	return New(Policy{})
}

// Failing returns a zero-delay simulator on which the given operations always fail.
func Failing(ops ...Op) *Simulator {
	failOps := make(map[Op]bool, len(ops))
	for _, op := range ops {
		failOps[op] = true
	}
	return New(Policy{FailOps: failOps})
}

func (s *Simulator) Delay(op Op) time.Duration {
	base, ok := s.policy.Delays[op]
	if !ok {
		base = s.policy.DefaultDelay
	}
	d := time.Duration(float64(base) * s.policy.Scale)
	if s.policy.Jitter > 0 {
		d += time.Duration(s.jitter(int64(s.policy.Jitter)))
	}
	return d
}

func (s *Simulator) Wait(ctx context.Context, op Op) error {
	if d := s.Delay(op); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), string(op))
		case <-timer.C:
		}
	}

	if op.ReadOnly() {
		return nil
	}
	if s.policy.FailOps[op] || (s.policy.FailureRate > 0 && s.roll() < s.policy.FailureRate) {
		return errs.Wrap(ErrSimulatedFailure, string(op))
	}
	return nil
}

// Call runs fn after the simulated round trip for op.
func Call[T any](ctx context.Context, n Network, op Op, fn func() (T, error)) (T, error) {
	var zero T
	if err := n.Wait(ctx, op); err != nil {
		return zero, err
	}
	return fn()
}
