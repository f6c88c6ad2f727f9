package repository

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
	"fieldbook/internal/infra/catalog"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/idgen"
	"fieldbook/internal/usecase/shared"
)

const (
	sampleBookingID   = "b1"
	sampleBookingCode = "123456"
	sampleBookingTime = "18:00"
)

// LocalBackend serves every booking operation in-process: the catalog from
// memory, owner fields from durable storage, owner bookings from memory.
type LocalBackend struct {
	catalog     *catalog.Store
	ownerStore  *storage.OwnerFieldsStore
	factory     *booking.Factory
	clock       clock.Clock
	ids         idgen.Generator
	maxAttempts int
	logger      *slog.Logger

	mu            sync.Mutex
	ownerFields   map[string][]listing.Listing
	ownerBookings map[string][]booking.Booking
	attempts      map[string]int
}

var _ shared.Backend = (*LocalBackend)(nil)

func NewLocalBackend(
	catalogStore *catalog.Store,
	ownerStore *storage.OwnerFieldsStore,
	clk clock.Clock,
	ids idgen.Generator,
	maxAttempts int,
	logger *slog.Logger,
) *LocalBackend {
	return &LocalBackend{
		catalog:       catalogStore,
		ownerStore:    ownerStore,
		factory:       booking.NewFactory(clk, booking.NewHourlyPriceCalculator(), ids),
		clock:         clk,
		ids:           ids,
		maxAttempts:   maxAttempts,
		logger:        logger,
		ownerFields:   make(map[string][]listing.Listing),
		ownerBookings: make(map[string][]booking.Booking),
		attempts:      make(map[string]int),
	}
}

func (b *LocalBackend) ListListings(_ context.Context) ([]listing.Listing, error) {
	return b.catalog.List(), nil
}

func (b *LocalBackend) GetListing(_ context.Context, id string) (listing.Listing, error) {
	l, ok := b.catalog.Get(id)
	if !ok {
		return listing.Listing{}, errs.ErrListingNotFound
	}
	return l, nil
}

func (b *LocalBackend) SearchListings(_ context.Context, query string) ([]listing.Listing, error) {
	return b.catalog.Search(query), nil
}

func (b *LocalBackend) ListAdPackages(_ context.Context) ([]promotion.AdPackage, error) {
	return promotion.Packages(), nil
}

func (b *LocalBackend) ListTimeSlots(_ context.Context) ([]string, error) {
	return booking.TimeSlots(), nil
}

// CreateBooking prices the booking from the catalog. An unknown listing is
// booked at price 0. The booking is also handed to the listing's owner so it
// can be verified on site; owner counters are left alone.
func (b *LocalBackend) CreateBooking(_ context.Context, params shared.CreateBookingParams) (booking.Booking, error) {
	var target *listing.Listing
	if l, ok := b.catalog.Get(params.FieldID); ok {
		target = &l
	}

	created, err := b.factory.CreateBooking(target, booking.Request{
		FieldID:  params.FieldID,
		UserID:   params.UserID,
		Date:     params.Date,
		Time:     params.Time,
		Duration: params.Duration,
	})
	if err != nil {
		return booking.Booking{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	if target != nil && target.OwnerID != "" {
		b.mu.Lock()
		list := b.ownerBookingsLocked(target.OwnerID)
		b.ownerBookings[target.OwnerID] = append(list, *created)
		b.mu.Unlock()
	}
	return *created, nil
}

// GetBookingsForUser has nothing to offer locally; callers keep their cache.
func (b *LocalBackend) GetBookingsForUser(_ context.Context, _ string) ([]booking.Booking, error) {
	return []booking.Booking{}, nil
}

func (b *LocalBackend) GetOwnerFields(ctx context.Context, ownerID string) ([]listing.Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fields, err := b.ownerFieldsLocked(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(fields), nil
}

func (b *LocalBackend) CreateOwnerField(ctx context.Context, ownerID string, p listing.Patch) (listing.Listing, error) {
	created, err := listing.NewOwnerListing(b.ids.NewID(), ownerID, p, b.clock.Now())
	if err != nil {
		return listing.Listing{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	fields, err := b.ownerFieldsLocked(ctx, ownerID)
	if err != nil {
		return listing.Listing{}, err
	}
	b.ownerFields[ownerID] = append(fields, created)
	b.persistLocked(ctx, ownerID)
	return created, nil
}

func (b *LocalBackend) UpdateOwnerField(ctx context.Context, ownerID, fieldID string, p listing.Patch) (listing.Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fields, err := b.ownerFieldsLocked(ctx, ownerID)
	if err != nil {
		return listing.Listing{}, err
	}
	i := indexListing(fields, fieldID)
	if i < 0 {
		return listing.Listing{}, errs.ErrListingNotFound
	}
	merged, err := fields[i].Merge(p)
	if err != nil {
		return listing.Listing{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	fields[i] = merged
	b.persistLocked(ctx, ownerID)
	return merged, nil
}

func (b *LocalBackend) DeleteOwnerField(ctx context.Context, ownerID, fieldID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	fields, err := b.ownerFieldsLocked(ctx, ownerID)
	if err != nil {
		return err
	}
	i := indexListing(fields, fieldID)
	if i < 0 {
		return errs.ErrListingNotFound
	}
	b.ownerFields[ownerID] = slices.Delete(fields, i, i+1)
	b.persistLocked(ctx, ownerID)
	return nil
}

func (b *LocalBackend) GetOwnerBookings(_ context.Context, ownerID string, filter shared.OwnerBookingFilter) ([]booking.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return filter.Apply(b.ownerBookingsLocked(ownerID)), nil
}

// VerifyBooking checks code against the booking's own code, also for a booking
// that is already verified. Each mismatch uses up an attempt; once they run
// out the booking is locked.
func (b *LocalBackend) VerifyBooking(_ context.Context, ownerID, bookingID, code string) (shared.VerifyResult, error) {
	if err := booking.ValidateCodeFormat(code); err != nil {
		return shared.VerifyResult{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.ownerBookingsLocked(ownerID)
	i := slices.IndexFunc(list, func(bk booking.Booking) bool { return bk.ID == bookingID })
	if i < 0 {
		return shared.VerifyResult{}, errs.ErrBookingNotFound
	}
	target := &list[i]
	key := ownerID + "/" + bookingID
	used := b.attempts[key]

	if used >= b.maxAttempts {
		return shared.VerifyResult{}, errs.ErrVerificationLocked
	}

	if !target.MatchesCode(code) {
		used++
		b.attempts[key] = used
		b.logger.Info("verification code mismatch", "owner_id", ownerID, "booking_id", bookingID, "attempts_left", b.maxAttempts-used)
		return shared.VerifyResult{Verified: false, AttemptsLeft: b.maxAttempts - used}, nil
	}

	if !target.IsVerified {
		target.MarkVerified()
	}
	verified := *target
	return shared.VerifyResult{Verified: true, AttemptsLeft: b.maxAttempts - used, Booking: &verified}, nil
}

func (b *LocalBackend) GetOwnerStats(ctx context.Context, ownerID string) (shared.OwnerStats, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fields, err := b.ownerFieldsLocked(ctx, ownerID)
	if err != nil {
		return shared.OwnerStats{}, err
	}
	stats := shared.OwnerStats{
		TotalFields: len(fields) + len(b.catalog.OwnedBy(ownerID)),
	}
	for _, bk := range b.ownerBookingsLocked(ownerID) {
		stats.TotalBookings++
		stats.Earnings += bk.TotalPrice
	}
	return stats, nil
}

// PromoteField flags the owner's own listing, falling back to a catalog
// listing the owner holds. Nothing about the package is recorded.
func (b *LocalBackend) PromoteField(ctx context.Context, ownerID, fieldID string, req promotion.Request) (listing.Listing, error) {
	if err := req.Validate(); err != nil {
		return listing.Listing{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fields, err := b.ownerFieldsLocked(ctx, ownerID)
	if err != nil {
		return listing.Listing{}, err
	}
	if i := indexListing(fields, fieldID); i >= 0 {
		fields[i].Promote()
		b.persistLocked(ctx, ownerID)
		return fields[i], nil
	}

	if l, ok := b.catalog.Get(fieldID); ok && l.OwnerID == ownerID {
		promoted, _ := b.catalog.SetPromoted(fieldID)
		return promoted, nil
	}
	return listing.Listing{}, errs.ErrListingNotFound
}

// ownerFieldsLocked loads the owner's listings once. A failed load is not
// cached so the next call retries.
func (b *LocalBackend) ownerFieldsLocked(ctx context.Context, ownerID string) ([]listing.Listing, error) {
	if fields, ok := b.ownerFields[ownerID]; ok {
		return fields, nil
	}
	fields, err := b.ownerStore.Load(ctx, ownerID)
	if err != nil {
		b.logger.Warn("failed to load owner fields", "owner_id", ownerID, "error", err)
		return nil, errs.Mark(err, errs.ErrBackendUnavailable)
	}
	b.ownerFields[ownerID] = fields
	return fields, nil
}

// persistLocked writes through. A failed write keeps the in-memory change.
func (b *LocalBackend) persistLocked(ctx context.Context, ownerID string) {
	if err := b.ownerStore.Save(ctx, ownerID, b.ownerFields[ownerID]); err != nil {
		b.logger.Warn("owner fields kept in memory only", "owner_id", ownerID, "error", err)
	}
}

// ownerBookingsLocked seeds each owner with one pending sample booking.
func (b *LocalBackend) ownerBookingsLocked(ownerID string) []booking.Booking {
	if list, ok := b.ownerBookings[ownerID]; ok {
		return list
	}

	var sample listing.Listing
	if owned := b.catalog.OwnedBy(ownerID); len(owned) > 0 {
		sample = owned[0]
	} else if all := b.catalog.List(); len(all) > 0 {
		sample = all[0]
	}
	price := sample.PricePerHour
	if price == 0 {
		price = 100000
	}
	name := sample.Name
	if name == "" {
		name = booking.UnknownFieldName
	}

	list := []booking.Booking{{
		ID:               sampleBookingID,
		FieldID:          sample.ID,
		FieldName:        name,
		Location:         sample.Location,
		Image:            sample.Image,
		UserID:           "u1",
		UserName:         "Ahmed Karimov",
		UserPhone:        "+998912345678",
		Date:             clock.Today(b.clock),
		Time:             sampleBookingTime,
		Duration:         2,
		TotalPrice:       price * 2,
		VerificationCode: sampleBookingCode,
		Status:           booking.StatusPending,
	}}
	b.ownerBookings[ownerID] = list
	return list
}

func indexListing(ls []listing.Listing, id string) int {
	return slices.IndexFunc(ls, func(l listing.Listing) bool { return l.ID == id })
}
