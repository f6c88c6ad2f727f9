package api

import (
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/usecase"
	"fieldbook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves /api/owner/:ownerId. The router guarantees ownerId is the caller.
type OwnerHandler struct {
	bookings usecase.BookingService
}

func NewOwnerHandler(bookings usecase.BookingService) *OwnerHandler {
	return &OwnerHandler{bookings: bookings}
}

// @Summary List owner fields
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Success 200 {array} listing.Listing
// @Router /api/owner/{ownerId}/fields [get]
func (h *OwnerHandler) ListFields(c *gin.Context) {
	fields, err := h.bookings.GetOwnerFields(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load fields")
		return
	}
	c.JSON(http.StatusOK, fields)
}

// @Summary Create owner field
// @Description Unspecified attributes get defaults: name "Unnamed field", rating 0, placeholder image
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Param request body reqdto.FieldRequest true "Field attributes"
// @Success 201 {object} listing.Listing
// @Failure 400 {object} httperr.Response
// @Router /api/owner/{ownerId}/fields [post]
func (h *OwnerHandler) CreateField(c *gin.Context) {
	var req reqdto.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.bookings.CreateOwnerField(c.Request.Context(), c.Param("ownerId"), req.ToPatch())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create field")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update owner field
// @Description Shallow merge: only the given attributes change
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Param fieldId path string true "Field ID"
// @Param request body reqdto.FieldRequest true "Changed attributes"
// @Success 200 {object} listing.Listing
// @Failure 404 {object} httperr.Response
// @Router /api/owner/{ownerId}/fields/{fieldId} [put]
func (h *OwnerHandler) UpdateField(c *gin.Context) {
	var req reqdto.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	updated, err := h.bookings.UpdateOwnerField(c.Request.Context(), c.Param("ownerId"), c.Param("fieldId"), req.ToPatch())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to update field")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete owner field
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Param fieldId path string true "Field ID"
// @Success 200 {object} resdto.OKResponse
// @Failure 404 {object} httperr.Response
// @Router /api/owner/{ownerId}/fields/{fieldId} [delete]
func (h *OwnerHandler) DeleteField(c *gin.Context) {
	if err := h.bookings.DeleteOwnerField(c.Request.Context(), c.Param("ownerId"), c.Param("fieldId")); err != nil {
		abortWithUseCaseError(c, err, "Failed to delete field")
		return
	}
	c.JSON(http.StatusOK, resdto.OKResponse{OK: true})
}

// @Summary Promote field
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Param fieldId path string true "Field ID"
// @Param request body reqdto.PromoteRequest true "Ad package"
// @Success 200 {object} shared.PromoteResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/owner/{ownerId}/fields/{fieldId}/promote [post]
func (h *OwnerHandler) Promote(c *gin.Context) {
	var req reqdto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	field, err := h.bookings.PromoteField(c.Request.Context(), c.Param("ownerId"), c.Param("fieldId"), req.ToDomain())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to promote field")
		return
	}
	c.JSON(http.StatusOK, shared.PromoteResult{OK: true, Field: field})
}

// @Summary Owner bookings
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Param status query string false "pending, upcoming, verified, completed, cancelled or all"
// @Param sort query string false "date-desc, date-asc, price-high or price-low"
// @Success 200 {array} booking.Booking
// @Failure 400 {object} httperr.Response
// @Router /api/owner/{ownerId}/bookings [get]
func (h *OwnerHandler) Bookings(c *gin.Context) {
	var q reqdto.OwnerBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid query")
		return
	}

	list, err := h.bookings.GetOwnerBookings(c.Request.Context(), c.Param("ownerId"), filter)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Verify booking
// @Description Check the renter's 6-digit code. A mismatch answers 200 with the attempts left; the fourth try is locked.
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Param bookingId path string true "Booking ID"
// @Param request body reqdto.VerifyRequest true "Code"
// @Success 200 {object} shared.VerifyResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 423 {object} httperr.Response
// @Router /api/owner/{ownerId}/bookings/{bookingId}/verify [post]
func (h *OwnerHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.bookings.VerifyBooking(c.Request.Context(), c.Param("ownerId"), c.Param("bookingId"), req.VerificationCode)
	if err != nil {
		abortWithUseCaseError(c, err, "Verification failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Owner stats
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Success 200 {object} shared.OwnerStats
// @Router /api/owner/{ownerId}/stats [get]
func (h *OwnerHandler) Stats(c *gin.Context) {
	stats, err := h.bookings.GetOwnerStats(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
