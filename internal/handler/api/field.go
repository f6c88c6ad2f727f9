package api

import (
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FieldHandler struct {
	bookings usecase.BookingService
}

func NewFieldHandler(bookings usecase.BookingService) *FieldHandler {
	return &FieldHandler{bookings: bookings}
}

// @Summary List fields
// @Description Catalog listings filtered by text and price bucket, sorted by the given key
// @Tags fields
// @Produce json
// @Param q query string false "Text matched against name and location"
// @Param price query string false "all, cheap, medium or expensive"
// @Param sort query string false "rating, reviews, price-low or price-high"
// @Success 200 {array} listing.Listing
// @Failure 400 {object} httperr.Response
// @Router /api/fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	var q reqdto.BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	browse, err := q.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid query")
		return
	}

	ls, err := h.bookings.BrowseListings(c.Request.Context(), browse)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load fields")
		return
	}
	c.JSON(http.StatusOK, ls)
}

// @Summary Home view
// @Description Top and featured listings plus browse results; falls back to the first listings when nothing matches
// @Tags fields
// @Produce json
// @Param q query string false "Text matched against name and location"
// @Param price query string false "all, cheap, medium or expensive"
// @Param sort query string false "rating, reviews, price-low or price-high"
// @Success 200 {object} listing.HomeView
// @Router /api/home [get]
func (h *FieldHandler) Home(c *gin.Context) {
	var q reqdto.BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	browse, err := q.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid query")
		return
	}

	view, err := h.bookings.Home(c.Request.Context(), browse)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load home view")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Search fields
// @Tags fields
// @Produce json
// @Param q query string false "Text matched against name and location"
// @Success 200 {array} listing.Listing
// @Router /api/fields/search [get]
func (h *FieldHandler) Search(c *gin.Context) {
	ls, err := h.bookings.SearchListings(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithUseCaseError(c, err, "Search failed")
		return
	}
	c.JSON(http.StatusOK, ls)
}

// @Summary Get field
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} listing.Listing
// @Failure 404 {object} httperr.Response
// @Router /api/fields/{id} [get]
func (h *FieldHandler) Get(c *gin.Context) {
	l, err := h.bookings.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load field")
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary List ad packages
// @Tags fields
// @Produce json
// @Success 200 {array} promotion.AdPackage
// @Router /api/ad-packages [get]
func (h *FieldHandler) AdPackages(c *gin.Context) {
	ps, err := h.bookings.ListAdPackages(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load packages")
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary List time slots
// @Tags fields
// @Produce json
// @Success 200 {array} string
// @Router /api/time-slots [get]
func (h *FieldHandler) TimeSlots(c *gin.Context) {
	slots, err := h.bookings.ListTimeSlots(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load time slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}
