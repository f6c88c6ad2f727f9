//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/usecase/shared"
	"fieldbook/tests/common/builder"
	"fieldbook/tests/common/httptest"
	"fieldbook/tests/common/testutil"
	usecasemock "fieldbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	bookings *usecasemock.MockBookingService
	renter   *usecasemock.MockRenterBookings
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.bookings = usecasemock.NewMockBookingService(s.mockCtrl)
	s.renter = usecasemock.NewMockRenterBookings(s.mockCtrl)

	h := api.NewBookingHandler(s.bookings, s.renter)
	authMw := newAuthMiddleware(s.mockCtrl)
	s.router.POST("/bookings", authMw.RequireAuth(), h.Create)
	s.router.GET("/my-bookings", authMw.RequireAuth(), h.Mine)
	s.router.GET("/users/:userId/bookings", authMw.RequireAuth(), authMw.RequireSelf("userId"), h.ForUser)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	body := map[string]any{"fieldId": "1", "date": "2026-06-12", "time": "18:00", "duration": 2}
	created := builder.NewBookingBuilder().BuildDomain()

	s.Run("success: books for the caller and records it", func() {
		params := shared.CreateBookingParams{FieldID: "1", UserID: renter.ID, Date: "2026-06-12", Time: "18:00", Duration: 2}
		s.bookings.EXPECT().CreateBooking(gomock.Any(), params).Return(created, nil)
		s.renter.EXPECT().Add(gomock.Any(), renter.ID, created).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, renterToken)

		var got booking.Booking
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		if diff := cmp.Diff(created, got); diff != "" {
			s.T().Errorf("booking mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: a userId in the body is ignored", func() {
		spoofed := testutil.DtoMap(s.T(), body, testutil.Field("userId", "someone-else"))
		s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p shared.CreateBookingParams) (booking.Booking, error) {
				s.Equal(renter.ID, p.UserID)
				return created, nil
			})
		s.renter.EXPECT().Add(gomock.Any(), renter.ID, created).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", spoofed, renterToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: a cache write failure does not fail the booking", func() {
		s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(created, nil)
		s.renter.EXPECT().Add(gomock.Any(), renter.ID, created).Return(errors.New("disk full"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, renterToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing fieldId", mutate: testutil.Field("fieldId", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing time", mutate: testutil.Field("time", nil)},
			{name: "duration above 5", mutate: testutil.Field("duration", 6)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", testutil.DtoMap(s.T(), body, tc.mutate), renterToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on an invalid time slot", func() {
		s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(booking.Booking{}, booking.ErrInvalidTimeSlot)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", testutil.DtoMap(s.T(), body, testutil.Field("time", "18:30")), renterToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestMine() {
	list := []booking.Booking{builder.NewBookingBuilder().BuildDomain()}
	s.renter.EXPECT().Load(gomock.Any(), renter.ID).Return(list)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-bookings", nil, renterToken)

	var got []booking.Booking
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Len(got, 1)
}

func (s *BookingHandlerTestSuite) TestForUser() {
	s.Run("success: own bookings", func() {
		s.renter.EXPECT().List(gomock.Any(), renter.ID).Return([]booking.Booking{})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+renter.ID+"/bookings", nil, renterToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 403 for another user's bookings", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/someone-else/bookings", nil, renterToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
