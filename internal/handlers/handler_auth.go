package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/SscSPs/pix_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication. Login is public and
// rate limited per client IP, registration needs an admin token.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter, authMiddleware gin.HandlerFunc) {
	h := NewAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/register", authMiddleware, middleware.RequireRoles(string(domain.RoleAdmin)), h.Register)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user_id", token.User.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token.Token, TokenType: "Bearer", ExpiresAt: token.ExpiresAt})
}

// Register godoc
// @Summary Register a user
// @Description Creates an API user with the given roles.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Username already in use"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.RegisterUser(c.Request.Context(), req.Username, req.Password, req.Roles)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
