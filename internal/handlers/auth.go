package handlers

import (
	"errors"
	"net/http"

	"travel_planner/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errUserExists         = "User already exists"
	errInvalidCredentials = "Invalid credentials"
	errUserNotFound       = "User not found"
	errServer             = "Server error"
)

// SignUpRequest is the signup payload.
type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password    string `json:"password" binding:"required,max=72" example:"s3cr3t"`
	DisplayName string `json:"displayName,omitempty" example:"Alice"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cr3t"`
}

// ProfileRequest carries optional profile changes.
type ProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=1,max=72"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "credentials"
// @Success      201   {object}  service.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	switch {
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": errUserExists})
		return
	case errors.Is(err, service.ErrEmptyPassword), errors.Is(err, service.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "auth_sign_up_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "credentials"
// @Success      200   {object}  service.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "email", input.Email)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCredentials})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "auth_login_error", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.PublicUser
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *Handler) getProfile(c *gin.Context) {
	u, err := h.services.GetProfile(c.Request.Context(), callerUID(c))
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "profile_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, u.Public())
}

// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ProfileRequest  true  "changes"
// @Success      200   {object}  models.PublicUser
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /me [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input ProfileRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.UpdateProfile(c.Request.Context(), callerUID(c), service.ProfileUpdate{
		DisplayName: input.DisplayName,
		Password:    input.Password,
	})
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		return
	case errors.Is(err, service.ErrEmptyPassword), errors.Is(err, service.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "profile_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, u.Public())
}
