//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fieldbook/internal/domain/preference"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase"
	"fieldbook/tests/common/httptest"
	usecasemock "fieldbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PreferenceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	preferences *usecasemock.MockPreferenceUseCase
}

func (s *PreferenceHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.preferences = usecasemock.NewMockPreferenceUseCase(s.mockCtrl)

	h := api.NewPreferenceHandler(s.preferences)
	s.router.GET("/preferences", h.Get)
	s.router.PUT("/preferences", h.Update)
	s.router.GET("/translations", h.Translations)
}

func (s *PreferenceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPreferenceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}

func (s *PreferenceHandlerTestSuite) TestGet() {
	s.Run("uses the client header", func() {
		s.preferences.EXPECT().Get(gomock.Any(), "browser-7").Return(preference.Preference{Language: "ru", Theme: "dark"})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/preferences", nil,
			map[string]string{middleware.ClientIDHeader: "browser-7"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"language":"ru","theme":"dark"}`, rec.Body.String())
	})

	s.Run("falls back to the default client", func() {
		s.preferences.EXPECT().Get(gomock.Any(), middleware.DefaultClientID).Return(preference.Default())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/preferences", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *PreferenceHandlerTestSuite) TestUpdate() {
	theme := "dark"

	s.Run("success: only the theme changes", func() {
		s.preferences.EXPECT().Update(gomock.Any(), middleware.DefaultClientID, usecase.PreferenceUpdate{Theme: &theme}).
			Return(preference.Preference{Language: "uz", Theme: "dark"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/preferences", map[string]any{"theme": theme}, "")

		var got preference.Preference
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(preference.Theme("dark"), got.Theme)
	})

	s.Run("error: 400 for an unsupported language", func() {
		s.preferences.EXPECT().Update(gomock.Any(), middleware.DefaultClientID, gomock.Any()).
			Return(preference.Preference{}, preference.ErrUnsupportedLanguage)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/preferences", map[string]any{"language": "de"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *PreferenceHandlerTestSuite) TestTranslations() {
	s.preferences.EXPECT().Translate(gomock.Any(), middleware.DefaultClientID, "en", []string{"home", "noSuchKey"}).
		Return(preference.LanguageEnglish, map[string]string{"home": "Home", "noSuchKey": "noSuchKey"})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/translations?lang=en&keys=home,%20noSuchKey,", nil, "")

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	s.JSONEq(`{"language":"en","translations":{"home":"Home","noSuchKey":"noSuchKey"}}`, rec.Body.String())
}
