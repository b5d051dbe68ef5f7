package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
	"github.com/ais-aviation/currency-service/internal/dto"
	"github.com/ais-aviation/currency-service/internal/handlers"
	"github.com/ais-aviation/currency-service/internal/middleware"
	"github.com/ais-aviation/currency-service/internal/utils"
	"github.com/ais-aviation/currency-service/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockUsers *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUsers = new(MockUserService)

	cfg := &config.Config{
		ServiceName:       "currency-service-test",
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		IsProduction:      true,
	}
	container := &portssvc.ServiceContainer{
		Rate:       new(MockRateService),
		Conversion: new(MockConversionService),
		User:       suite.mockUsers,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req, err := http.NewRequest(http.MethodPost, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Email: "traveler@example.com", Password: "correct-horse", Name: "Traveler"}
	created := &domain.User{
		UserID: "u-1",
		OpenID: "local_0123456789abcdef",
		Email:  req.Email,
		Name:   req.Name,
		Role:   domain.RoleUser,
	}
	suite.mockUsers.On("RegisterUser", mock.Anything, req).Return(created, nil).Once()

	w := suite.postJSON("/auth/register", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Require().NotNil(resp.User)
	suite.Equal("u-1", resp.User.UserID)
	suite.Equal("local_0123456789abcdef", resp.User.OpenID)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPasswordRejected() {
	w := suite.postJSON("/auth/register",
		dto.RegisterRequest{Email: "traveler@example.com", Password: "short"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUsers.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "traveler@example.com", Password: "correct-horse"}
	suite.mockUsers.On("RegisterUser", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/auth/register", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	stored := &domain.User{UserID: "u-1", Email: "traveler@example.com", Role: domain.RoleAdmin}
	suite.mockUsers.On("VerifyCredentials", mock.Anything, stored.Email, "correct-horse").
		Return(stored, nil).Once()

	w := suite.postJSON("/auth/login",
		dto.LoginRequest{Email: stored.Email, Password: "correct-horse"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Require().NotEmpty(resp.Token)

	claims, err := utils.ParseAndValidateJWT(resp.Token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal("u-1", claims.Subject)
	suite.Equal(domain.RoleAdmin, claims.Role)
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUsers.On("VerifyCredentials", mock.Anything, "traveler@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/auth/login",
		dto.LoginRequest{Email: "traveler@example.com", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestVerifyPassword_Match() {
	stored := &domain.User{UserID: "u-1", Email: "traveler@example.com"}
	suite.mockUsers.On("VerifyCredentials", mock.Anything, stored.Email, "correct-horse").
		Return(stored, nil).Once()

	w := suite.postJSON("/auth/verify-password",
		dto.VerifyPasswordRequest{Email: stored.Email, Password: "correct-horse"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
}

func (suite *AuthHandlerTestSuite) TestVerifyPassword_MismatchStillReturns200() {
	suite.mockUsers.On("VerifyCredentials", mock.Anything, "traveler@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/auth/verify-password",
		dto.VerifyPasswordRequest{Email: "traveler@example.com", Password: "wrong"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Nil(resp.User)
}

func (suite *AuthHandlerTestSuite) TestVerifyPassword_UnknownUserStillReturns200() {
	suite.mockUsers.On("VerifyCredentials", mock.Anything, "nobody@example.com", "whatever").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/auth/verify-password",
		dto.VerifyPasswordRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
}

// --- Run Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
