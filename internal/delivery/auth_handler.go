package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/usecase"
)

type AuthHandler struct {
	sessions usecase.SessionStore
	log      *logrus.Logger
}

func NewAuthHandler(sessions usecase.SessionStore, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		log:      logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
	}
}

// LoginRequest defines the expected JSON body for login requests.
// The email is matched exactly against the directory, so no format
// validation or normalization happens here.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is the authenticated-user view returned to the UI.
// The stored credential is never echoed back.
type SessionResponse struct {
	Token string      `json:"token,omitempty"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func profileOf(u *domain.User) UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *AuthHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	handlerLogger.Infof("Processing login request for email: %s", req.Email)

	user, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		handlerLogger.Warnf("Login failed for email %s: %v", req.Email, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	handlerLogger.Infof("Login successful for UserID: %d", user.ID)
	SuccessResponse(c, http.StatusOK, "Login successful", SessionResponse{
		Token: uuid.NewString(),
		User:  profileOf(user),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Register")
	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind register request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	handlerLogger.Infof("Processing registration request for email: %s", req.Email)

	user, err := h.sessions.Register(req.Name, req.Email, req.Password)
	if err != nil {
		handlerLogger.Warnf("Registration failed for email %s: %v", req.Email, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	handlerLogger.Infof("Registration successful for UserID: %d", user.ID)
	SuccessResponse(c, http.StatusCreated, "Registration successful", SessionResponse{
		Token: uuid.NewString(),
		User:  profileOf(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Session(c *gin.Context) {
	user := h.sessions.CurrentSession()
	if user == nil {
		ErrorResponse(c, http.StatusNotFound, "No active session")
		return
	}
	SuccessResponse(c, http.StatusOK, "Session retrieved", SessionResponse{User: profileOf(user)})
}
