package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/auth"
	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
)

// UserStore is the user persistence used by the auth endpoints
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthHandler handles signup, login and session requests
type AuthHandler struct {
	users        UserStore
	jwtService   *auth.JWTService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users UserStore, jwtService *auth.JWTService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		users:        users,
		jwtService:   jwtService,
		cookieSecure: cookieSecure,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create an account with one of the roles "AR Requestor" or "Recruiter Admin"
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.SuccessResponse "User created"
// @Failure 400 {object} models.ErrorResponse "Missing fields"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Missing fields",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if !models.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid role",
			Code:    http.StatusBadRequest,
			Details: "role must be \"" + models.RoleARRequestor + "\" or \"" + models.RoleRecruiterAdmin + "\"",
		})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process registration",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Password:  hashedPassword,
		Role:      req.Role,
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "User already exists",
				Code:  http.StatusConflict,
			})
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User registered: %s (%s)", user.Email, user.Role)
	c.JSON(http.StatusCreated, models.SuccessResponse{Success: true})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Verify credentials and set the httpOnly token and role cookies
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Missing credentials"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Missing credentials",
			Code:  http.StatusBadRequest,
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("[AuthHandler] Failed to load user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if user == nil || !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid email or password",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	auth.SetSessionCookies(c, token, user.Role, int(h.jwtService.Expiry().Seconds()), h.cookieSecure)

	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		Role:    user.Role,
		Token:   token,
		User:    user,
	})
}

// Logout clears the session cookies
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Success 200 {object} models.SuccessResponse "Logged out"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookies(c, h.cookieSecure)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// CheckEmail reports whether an account exists for an email. Lookup
// failures answer false.
// @Summary Check email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.CheckEmailRequest true "Email to check"
// @Success 200 {object} models.CheckEmailResponse
// @Router /check-email [post]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req models.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusOK, models.CheckEmailResponse{Exists: false})
		return
	}

	exists, err := h.users.EmailExists(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		log.Printf("[AuthHandler] Failed to check email: %v", err)
		exists = false
	}

	c.JSON(http.StatusOK, models.CheckEmailResponse{Exists: exists})
}

// Me returns the user behind the current session
// @Summary Get current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MeResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.MeResponse{User: user})
}

// UserLookup resolves the user behind a session
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// currentUser loads the session user, writing 401/404/500 on failure
func currentUser(c *gin.Context, users UserLookup) (*models.User, bool) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return nil, false
	}

	user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return nil, false
		}
		log.Printf("[AuthHandler] Failed to load session user %s: %v", claims.UserID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return nil, false
	}

	return user, true
}
