package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipebox/recipe-service/internal/api/metrics"
	"github.com/recipebox/recipe-service/internal/core/domain"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

// SessionManager establishes and destroys the client's session. Both calls
// return only once the session store has acknowledged the write.
type SessionManager interface {
	Start(c echo.Context, user domain.SessionUser) error
	End(c echo.Context) error
}

type AuthHandler struct {
	authService ports.AuthService
	sessions    SessionManager
}

func NewAuthHandler(authService ports.AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// SignUpForm renders the registration form.
func (h *AuthHandler) SignUpForm(c echo.Context) error {
	return c.Render(http.StatusOK, viewSignUp, nil)
}

// SignInForm renders the sign-in form.
func (h *AuthHandler) SignInForm(c echo.Context) error {
	return c.Render(http.StatusOK, viewSignIn, nil)
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      html
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {string}  string  "confirmation page"
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		First:           req.First,
		Last:            req.Last,
		Picture:         req.Picture,
	})
	metrics.RegistrationsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.Render(http.StatusCreated, viewThanks, user)
}

// SignIn verifies credentials, persists the session and redirects to the
// user's profile. The redirect is only sent after the session write succeeded.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      302   {string}  string  "redirect to /users/{id}"
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	metrics.SignInsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	if err := h.sessions.Start(c, domain.SessionUser{Email: user.Email, UserID: user.ID}); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, userPath(user.ID))
}

// SignOut destroys the session and redirects home. Safe without a session.
//
// @Summary      Sign out
// @Tags         auth
// @Success      302  {string}  string  "redirect to /"
// @Router       /auth/sign-out [get]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.sessions.End(c); err != nil {
		return err
	}
	metrics.SignOutsTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}

// UpdatePasswordForm renders the password change form.
func (h *AuthHandler) UpdatePasswordForm(c echo.Context) error {
	return c.Render(http.StatusOK, viewUpdatePassword, updatePasswordView{UserID: c.Param("id")})
}

// UpdatePassword changes the password of the user in the path.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      html
// @Param        id    path      string                 true  "User id"
// @Param        body  body      updatePasswordRequest  true  "Old and new passwords"
// @Success      200   {string}  string  "confirmation page"
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/users/{id}/password [put]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.authService.ChangePassword(c.Request().Context(), ports.ChangePasswordInput{
		UserID:          c.Param("id"),
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	metrics.PasswordChangesTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, viewConfirm, nil)
}
