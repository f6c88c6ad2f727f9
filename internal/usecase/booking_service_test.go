//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/simnet"
	"fieldbook/internal/usecase"
	"fieldbook/internal/usecase/shared"
	"fieldbook/tests/common/builder"
	sharedmock "fieldbook/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type BookingServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	mockBackend *sharedmock.MockBackend
	mockEvents  *sharedmock.MockEventPublisher
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBackend = sharedmock.NewMockBackend(s.mockCtrl)
	s.mockEvents = sharedmock.NewMockEventPublisher(s.mockCtrl)
}

func (s *BookingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func (s *BookingServiceTestSuite) service(net simnet.Network) usecase.BookingService {
	return usecase.NewBookingService(s.mockBackend, net, s.mockEvents, discardLogger())
}

func (s *BookingServiceTestSuite) TestReadsPassThrough() {
	svc := s.service(simnet.Immediate())
	want := []listing.Listing{builder.NewListingBuilder().BuildDomain()}

	s.mockBackend.EXPECT().ListListings(gomock.Any()).Return(want, nil)
	got, err := svc.ListListings(s.ctx)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(want, got))

	s.mockBackend.EXPECT().GetListing(gomock.Any(), "404").Return(listing.Listing{}, errs.ErrListingNotFound)
	_, err = svc.GetListing(s.ctx, "404")
	s.ErrorIs(err, errs.ErrListingNotFound)
}

func (s *BookingServiceTestSuite) TestReadsNeverFailUnderInjectedFailures() {
	svc := s.service(simnet.Failing(simnet.OpListListings, simnet.OpCreateBooking))

	s.mockBackend.EXPECT().ListListings(gomock.Any()).Return([]listing.Listing{}, nil)
	_, err := svc.ListListings(s.ctx)
	s.NoError(err)

	_, err = svc.CreateBooking(s.ctx, shared.CreateBookingParams{FieldID: "1", UserID: "u1", Date: "2026-06-12", Time: "18:00", Duration: 1})
	s.ErrorIs(err, simnet.ErrSimulatedFailure)
}

func (s *BookingServiceTestSuite) TestBrowseAndHome() {
	svc := s.service(simnet.Immediate())
	cheap := builder.NewListingBuilder().WithID("cheap").WithPrice(50000).BuildDomain()
	pricey := builder.NewListingBuilder().WithID("pricey").WithPrice(200000).BuildDomain()
	s.mockBackend.EXPECT().ListListings(gomock.Any()).Return([]listing.Listing{cheap, pricey}, nil).Times(2)

	got, err := svc.BrowseListings(s.ctx, listing.BrowseQuery{Price: listing.PriceCheap})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("cheap", got[0].ID)

	home, err := svc.Home(s.ctx, listing.BrowseQuery{Text: "nothing matches this"})
	s.Require().NoError(err)
	s.True(home.Fallback)
	s.Len(home.Results, 2)
}

func (s *BookingServiceTestSuite) TestCreateBookingPublishesEvent() {
	svc := s.service(simnet.Immediate())
	params := shared.CreateBookingParams{FieldID: "1", UserID: "u1", Date: "2026-06-12", Time: "18:00", Duration: 2}
	created := builder.NewBookingBuilder().BuildDomain()

	s.mockBackend.EXPECT().CreateBooking(gomock.Any(), params).Return(created, nil)
	s.mockEvents.EXPECT().Publish(gomock.Any(), shared.EventBookingCreated, created)

	got, err := svc.CreateBooking(s.ctx, params)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
}

func (s *BookingServiceTestSuite) TestVerifyBooking() {
	svc := s.service(simnet.Immediate())

	s.Run("mismatch publishes nothing", func() {
		s.mockBackend.EXPECT().VerifyBooking(gomock.Any(), "owner1", "b1", "000000").
			Return(shared.VerifyResult{AttemptsLeft: 2}, nil)

		res, err := svc.VerifyBooking(s.ctx, "owner1", "b1", "000000")
		s.Require().NoError(err)
		s.False(res.Verified)
		s.Equal(2, res.AttemptsLeft)
	})

	s.Run("match publishes booking.verified", func() {
		verified := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusVerified
		}).BuildDomain()
		s.mockBackend.EXPECT().VerifyBooking(gomock.Any(), "owner1", "b1", "123456").
			Return(shared.VerifyResult{Verified: true, Booking: &verified}, nil)
		s.mockEvents.EXPECT().Publish(gomock.Any(), shared.EventBookingVerified, &verified)

		res, err := svc.VerifyBooking(s.ctx, "owner1", "b1", "123456")
		s.Require().NoError(err)
		s.True(res.Verified)
	})

	s.Run("lockout is an error", func() {
		s.mockBackend.EXPECT().VerifyBooking(gomock.Any(), "owner1", "b1", "000000").
			Return(shared.VerifyResult{}, errs.ErrVerificationLocked)

		_, err := svc.VerifyBooking(s.ctx, "owner1", "b1", "000000")
		s.ErrorIs(err, errs.ErrVerificationLocked)
	})
}

func (s *BookingServiceTestSuite) TestOwnerFieldEvents() {
	svc := s.service(simnet.Immediate())
	field := builder.NewListingBuilder().WithID("f1").BuildDomain()

	s.mockBackend.EXPECT().CreateOwnerField(gomock.Any(), "owner1", gomock.Any()).Return(field, nil)
	s.mockEvents.EXPECT().Publish(gomock.Any(), shared.EventFieldCreated, field)
	_, err := svc.CreateOwnerField(s.ctx, "owner1", listing.Patch{})
	s.Require().NoError(err)

	s.mockBackend.EXPECT().DeleteOwnerField(gomock.Any(), "owner1", "f1").Return(nil)
	s.mockEvents.EXPECT().Publish(gomock.Any(), shared.EventFieldDeleted, gomock.Any())
	s.Require().NoError(svc.DeleteOwnerField(s.ctx, "owner1", "f1"))

	s.mockBackend.EXPECT().DeleteOwnerField(gomock.Any(), "owner1", "f1").Return(errs.ErrListingNotFound)
	s.ErrorIs(svc.DeleteOwnerField(s.ctx, "owner1", "f1"), errs.ErrListingNotFound)

	req := promotion.Request{PackageID: "1week"}
	s.mockBackend.EXPECT().PromoteField(gomock.Any(), "owner1", "f1", req).Return(field, nil)
	s.mockEvents.EXPECT().Publish(gomock.Any(), shared.EventFieldPromoted, gomock.Any())
	_, err = svc.PromoteField(s.ctx, "owner1", "f1", req)
	s.NoError(err)
}

func (s *BookingServiceTestSuite) TestCancelledContextStopsTheRoundTrip() {
	svc := s.service(simnet.New(simnet.DefaultPolicy()))
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := svc.GetOwnerStats(ctx, "owner1")
	s.ErrorIs(err, context.Canceled)
}
