package api

import (
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler keys everything by client id, so it works without signing in.
type PreferenceHandler struct {
	preferences usecase.PreferenceUseCase
}

func NewPreferenceHandler(preferences usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Param X-Client-ID header string false "Client ID"
// @Success 200 {object} preference.Preference
// @Router /api/preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferences.Get(c.Request.Context(), middleware.ClientID(c)))
}

// @Summary Update preferences
// @Description Both values are validated before either is stored
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client ID"
// @Param request body reqdto.UpdatePreferenceRequest true "Language and theme"
// @Success 200 {object} preference.Preference
// @Failure 422 {object} httperr.Response
// @Router /api/preferences [put]
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req reqdto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	pref, err := h.preferences.Update(c.Request.Context(), middleware.ClientID(c), req.ToUpdate())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to save preferences")
		return
	}
	c.JSON(http.StatusOK, pref)
}

// @Summary Translations
// @Description Translate keys into the requested language, or the stored one when lang is omitted. Unknown keys map to themselves.
// @Tags preferences
// @Produce json
// @Param X-Client-ID header string false "Client ID"
// @Param keys query string false "Comma separated keys"
// @Param lang query string false "uz, ru or en"
// @Success 200 {object} resdto.TranslationsResponse
// @Router /api/translations [get]
func (h *PreferenceHandler) Translations(c *gin.Context) {
	var q reqdto.TranslationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	lang, out := h.preferences.Translate(c.Request.Context(), middleware.ClientID(c), q.Lang, q.KeyList())
	c.JSON(http.StatusOK, resdto.TranslationsResponse{Language: lang, Translations: out})
}
