//go:build unit

package api_test

import (
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase"
	"fieldbook/tests/common/builder"
	usecasemock "fieldbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const (
	renterToken = "renter-token"
	ownerToken  = "owner-token"
)

var (
	renter = *builder.NewUserBuilder().MustBuild()
	owner  = *builder.NewUserBuilder().WithID("owner1").WithPhone("+998901112233").AsOwner().MustBuild()
)

// newAuthMiddleware authenticates renterToken as renter and ownerToken as owner;
// any other token is rejected.
func newAuthMiddleware(ctrl *gomock.Controller) *middleware.AuthMiddleware {
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().Authenticate(gomock.Any(), renterToken).
		Return(usecase.Principal{User: renter, SessionID: "sid-renter"}, nil).AnyTimes()
	validator.EXPECT().Authenticate(gomock.Any(), ownerToken).
		Return(usecase.Principal{User: owner, SessionID: "sid-owner"}, nil).AnyTimes()
	validator.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(usecase.Principal{}, usecase.ErrTokenValidation).AnyTimes()
	return middleware.NewAuthMiddleware(validator)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
