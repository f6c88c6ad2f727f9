package api

import (
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings usecase.BookingService
	renter   usecase.RenterBookings
}

func NewBookingHandler(bookings usecase.BookingService, renter usecase.RenterBookings) *BookingHandler {
	return &BookingHandler{bookings: bookings, renter: renter}
}

// @Summary Create booking
// @Description Book a slot for the caller. No availability check is made.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} booking.Booking
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.bookings.CreateBooking(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create booking")
		return
	}
	if err := h.renter.Add(c.Request.Context(), userID, created); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Bookings of a user
// @Description The caller's cached bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} booking.Booking
// @Failure 403 {object} httperr.Response
// @Router /api/users/{userId}/bookings [get]
func (h *BookingHandler) ForUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.renter.List(c.Request.Context(), c.Param("userId")))
}

// @Summary My bookings
// @Description The caller's bookings, reconciled with the backend when it has any
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} booking.Booking
// @Failure 401 {object} httperr.Response
// @Router /api/my-bookings [get]
func (h *BookingHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, h.renter.Load(c.Request.Context(), userID))
}
