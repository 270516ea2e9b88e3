package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/services"
	"github.com/mkoech/police-profiling/internal/middleware"
)

// csrfCookieMaxAge is one hour, matching the token's advertised life.
const csrfCookieMaxAge = 3600

// AuthController handles registration, login and session endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /auth/register.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Login handles POST /auth/login.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Logout handles POST /auth/logout. It succeeds whether or not the
// caller has a session.
func (ctrl *AuthController) Logout(c *gin.Context) {
	if userID, ok := middleware.GetUserID(c); ok {
		if err := ctrl.authService.Logout(c.Request.Context(), userID); err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}

// Check handles GET /auth/check. Both outcomes are 200.
func (ctrl *AuthController) Check(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AuthCheckResponse{Authenticated: false}))
		return
	}

	resp, err := ctrl.authService.Check(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AuthCheckResponse{Authenticated: false}))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CSRFToken handles GET /auth/csrf. It issues a random anti-forgery
// token, mirrors it into the csrftoken cookie and returns it in the
// body.
func (ctrl *AuthController) CSRFToken(c *gin.Context) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	token := hex.EncodeToString(buf)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("csrftoken", token, csrfCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CSRFTokenResponse{CSRFToken: token}))
}
