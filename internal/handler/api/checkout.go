package api

import (
	"context"
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase/workflow"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkouts workflow.Service
}

func NewCheckoutHandler(checkouts workflow.Service) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts}
}

// @Summary Start checkout
// @Description Open the booking dialog for a field
// @Tags checkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartCheckoutRequest true "Field"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkouts [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}
	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkout, err := h.checkouts.Start(c.Request.Context(), renterID, req.FieldID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to start checkout")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckout(checkout))
}

// @Summary Get checkout
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkouts/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	h.step(c, h.checkouts.Get)
}

// @Summary Select date, time or duration
// @Description All given selections apply or none do
// @Tags checkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Param request body reqdto.UpdateCheckoutRequest true "Selections"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkouts/{id} [patch]
func (h *CheckoutHandler) Update(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}
	var req reqdto.UpdateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkout, err := h.checkouts.UpdateDetails(c.Request.Context(), renterID, c.Param("id"), req.ToUpdate())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to update checkout")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(checkout))
}

// @Summary Continue to payment
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/checkouts/{id}/continue [post]
func (h *CheckoutHandler) Continue(c *gin.Context) {
	h.step(c, h.checkouts.Continue)
}

// @Summary Back from payment
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/checkouts/{id}/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	h.step(c, h.checkouts.CancelPayment)
}

// @Summary Close checkout
// @Description Reset the dialog to an empty selection
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Router /api/checkouts/{id}/close [post]
func (h *CheckoutHandler) Close(c *gin.Context) {
	h.step(c, h.checkouts.Close)
}

// @Summary Pay
// @Description Simulated payment followed by booking creation. Booking failures still confirm with a local code.
// @Tags checkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Param request body reqdto.PayRequest true "Payment details"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkouts/{id}/pay [post]
func (h *CheckoutHandler) Pay(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}
	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkout, err := h.checkouts.Pay(c.Request.Context(), renterID, c.Param("id"), req.ToDetails())
	if err != nil {
		abortWithUseCaseError(c, err, "Payment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(checkout))
}

type checkoutStep func(ctx context.Context, renterID, id string) (workflow.Checkout, error)

func (h *CheckoutHandler) step(c *gin.Context, fn checkoutStep) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "User not authenticated", nil)
		return
	}

	checkout, err := fn(c.Request.Context(), renterID, c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Checkout step failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(checkout))
}
