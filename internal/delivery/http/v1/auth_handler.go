package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	secureCookie bool
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, rateLimit gin.HandlerFunc, authUC domain.AuthUsecase, secureCookie bool) {
	handler := &AuthHandler{
		authUC:       authUC,
		secureCookie: secureCookie,
	}

	// Public Routes
	publicAuth := public.Group("/auth", rateLimit)
	{
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=2,max=100,valid_name"`
	Role     string `json:"role" binding:"required,oneof=jobseeker employer"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login godoc
// @Summary      User Login
// @Description  Start a session with email and password. The token is returned and also set as the auth_token cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=domain.Session}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	session, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, session)
	response.Success(c, http.StatusOK, "Login successful", session)
}

// Register godoc
// @Summary      User Registration
// @Description  Create a job seeker or employer account and start a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response{data=domain.Session}
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	session, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, session)
	response.Success(c, http.StatusCreated, "Registration successful", session)
}

// ResetPassword godoc
// @Summary      Request a password reset
// @Description  Confirms that an account exists for the email. No mail is sent.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "Account email"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password reset instructions sent", nil)
}

// Logout godoc
// @Summary      Logout
// @Description  End the current session and clear the auth_token cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(string(domain.KeySessionID))
	if err := h.authUC.Logout(c.Request.Context(), sessionID); err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Return the user bound to the current session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID := c.GetString(string(domain.KeySessionID))
	user, err := h.authUC.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *domain.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, session.Token, maxAge, "/", "", h.secureCookie, true)
}
