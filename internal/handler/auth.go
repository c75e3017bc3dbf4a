package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/config"
	"github.com/hotsauce86/Stream-TV/internal/model"
	"github.com/hotsauce86/Stream-TV/internal/repository"
	"github.com/hotsauce86/Stream-TV/internal/session"
	"github.com/hotsauce86/Stream-TV/internal/utils"
	"github.com/hotsauce86/Stream-TV/internal/validation"
)

// invalidCredentialsMsg is shown for a wrong password and for an
// unknown username alike, so the response never reveals whether the
// username exists.
const invalidCredentialsMsg = "Invalid User Name or Password - Try again"

// AuthHandler bundles dependencies for registration, login and
// logout.
type AuthHandler struct {
	Cfg       config.Config
	Customers CustomerStore
	Sessions  session.Store
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, customers CustomerStore, sessions session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: customers, Sessions: sessions}
}

// ----- forms -----

// loginForm mirrors the login page's fields.  Both are required;
// anything beyond presence is the store's concern.
type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// registerForm mirrors the registration page's fields and the
// original form's constraints: username and password at least five
// characters, matching confirmation, well-formed email, card number
// at least sixteen characters.
type registerForm struct {
	Username        string `form:"username" validate:"required,min=5"`
	Password        string `form:"password" validate:"required,min=5"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	CreditCard      string `form:"credit_card" validate:"required,min=16"`
}

// loginPage is the view-model for the login template.
type loginPage struct {
	basePage
	Form     loginForm
	Messages []string
}

// registerPage is the view-model for the registration template.  The
// form is echoed back without the password fields.
type registerPage struct {
	basePage
	Form     registerForm
	Messages []string
}

// ----- handlers -----

// ShowLogin renders the empty login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginPage{basePage: pageFor(c, "Login")})
}

// Login processes a login submission.  A bad password re-renders the
// login form with a generic message; the original's redirect to the
// registration page on that path was a defect, not a design.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.loginFailed(c, form, "Invalid form submission")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := validation.ValidateStruct(&form); err != nil {
		var fe *validation.FormError
		if errors.As(err, &fe) {
			return h.loginFailed(c, form, fe.Messages()...)
		}
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cust, err := h.Customers.GetByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return h.loginFailed(c, form, invalidCredentialsMsg)
		}
		return err
	}
	if !utils.VerifyPassword(cust.PasswordHash, form.Password) {
		return h.loginFailed(c, form, invalidCredentialsMsg)
	}

	s := session.Session{
		ID:            session.NewID(),
		Authenticated: true,
		Username:      cust.Username,
		CustID:        cust.CustID,
	}
	if err := h.Sessions.Save(ctx, s); err != nil {
		return err
	}
	h.setSessionCookie(c, s.ID, h.Cfg.SessionTTL)
	return c.Redirect(http.StatusSeeOther, "/")
}

// loginFailed re-renders the login form with the given messages.  The
// password is never echoed back.
func (h *AuthHandler) loginFailed(c echo.Context, form loginForm, msgs ...string) error {
	form.Password = ""
	return c.Render(http.StatusOK, "login", loginPage{
		basePage: pageFor(c, "Login"),
		Form:     form,
		Messages: msgs,
	})
}

// ShowRegister renders the empty registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register", registerPage{basePage: pageFor(c, "Register")})
}

// Register processes a registration submission.  On success the
// customer row is inserted with a store-generated cust_id and the
// visitor is sent to the home page still unauthenticated; logging in
// is a separate step.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.registerFailed(c, form, "Invalid form submission")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := validation.ValidateStruct(&form); err != nil {
		var fe *validation.FormError
		if errors.As(err, &fe) {
			return h.registerFailed(c, form, fe.Messages()...)
		}
		return err
	}

	hash, err := utils.HashPassword(form.Password, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	_, err = h.Customers.Create(ctx, model.Customer{
		Username:     form.Username,
		PasswordHash: hash,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		CreditCard:   form.CreditCard,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return h.registerFailed(c, form, "Username already exists - Try again")
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// registerFailed re-renders the registration form with the given
// messages, dropping both password fields.
func (h *AuthHandler) registerFailed(c echo.Context, form registerForm, msgs ...string) error {
	form.Password = ""
	form.ConfirmPassword = ""
	return c.Render(http.StatusOK, "register", registerPage{
		basePage: pageFor(c, "Register"),
		Form:     form,
		Messages: msgs,
	})
}

// Logout clears the visitor's session state unconditionally and
// redirects home.  Logging out twice is fine.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.Cfg.SessionCookie); err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()
		if err := h.Sessions.Delete(ctx, cookie.Value); err != nil {
			// The cookie is cleared regardless; a dangling entry
			// expires on its own.
			c.Logger().Warnf("session delete failed: %v", err)
		}
	}
	h.setSessionCookie(c, "", -time.Second)
	return c.Redirect(http.StatusSeeOther, "/")
}

// setSessionCookie writes the session cookie; a non-positive maxAge
// clears it.
func (h *AuthHandler) setSessionCookie(c echo.Context, id string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     h.Cfg.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
	}
	c.SetCookie(cookie)
}
