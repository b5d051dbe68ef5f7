package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
	"github.com/ais-aviation/currency-service/internal/dto"
	"github.com/ais-aviation/currency-service/internal/middleware"
	"github.com/ais-aviation/currency-service/internal/utils"
	"github.com/ais-aviation/currency-service/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/verify-password", h.VerifyPassword)
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a password account. The configured owner email is granted the admin role.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Failed to register user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate email")
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists."})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	userResp := dto.ToUserResponse(user)
	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", user.Role))
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		User:    &userResp,
		Message: "Registration successful.",
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a signed JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Failed to generate token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}
		logger.Error("Failed to verify credentials", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, user.Role, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	userResp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    &userResp,
		Token:   token,
		Message: "Login successful.",
	})
}

// VerifyPassword godoc
// @Summary Verify a password against the stored hash
// @Description Used by the reservation backend. Never fails across the boundary: unknown users and mismatches are reported as success=false.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyPasswordRequest true "Email and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /auth/verify-password [post]
func (h *AuthHandler) VerifyPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Error("Failed to verify password", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusOK, dto.AuthResponse{
			Success: false,
			Message: "Password does not match or user not found.",
		})
		return
	}

	userResp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    &userResp,
		Message: "Password verified.",
	})
}
