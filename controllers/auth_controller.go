package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webshop/services"
	"webshop/session"
)

// AuthController handles login, signup and logout.
type AuthController struct {
	auth     *services.AuthService
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAuthController(auth *services.AuthService, sessions *session.Manager, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, sessions: sessions, logger: logger}
}

// Login authenticates the session from the login form.
// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	sctx := ac.sessions.Context(c)

	_, err := ac.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			ac.logger.Error("login failed", zap.Error(err))
		}
		_ = sctx.Deauthenticate()
		_ = sctx.Flash("error", "Invalid email or password")
		c.Redirect(http.StatusFound, "/")
		return
	}

	_ = sctx.Authenticate(email)
	_ = sctx.Flash("success", "Login successful")
	c.Redirect(http.StatusFound, "/profile")
}

// ShowSignup renders the signup page, consuming the one-shot
// post-redirect success flag.
// GET /signup
func (ac *AuthController) ShowSignup(c *gin.Context) {
	sctx := ac.sessions.Context(c)
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"UsernameExists": false,
		"SignupSuccess":  sctx.PopSignupSuccess(),
		"Flashes":        sctx.Flashes(),
	})
}

// Signup creates an account from the signup form. On success it sets
// the one-shot flag and redirects back to the form so a refresh does
// not resubmit.
// POST /signup
func (ac *AuthController) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirm_password")

	sctx := ac.sessions.Context(c)

	err := ac.auth.Signup(c.Request.Context(), username, email, password, confirmPassword)
	switch {
	case errors.Is(err, services.ErrDuplicateUsername):
		_ = sctx.Flash("error", "Username already exists")
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"UsernameExists": true,
			"Flashes":        sctx.Flashes(),
		})
	case errors.Is(err, services.ErrPasswordMismatch):
		_ = sctx.Flash("error", "Passwords do not match")
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"UsernameExists": false,
			"Flashes":        sctx.Flashes(),
		})
	case err != nil:
		ac.logger.Error("signup failed", zap.Error(err))
		_ = sctx.Flash("error", "Error creating account, please try again")
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"UsernameExists": false,
			"Flashes":        sctx.Flashes(),
		})
	default:
		_ = sctx.MarkSignupSuccess()
		c.Redirect(http.StatusFound, "/signup")
	}
}

// Logout clears the session unconditionally.
// POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	sctx := ac.sessions.Context(c)
	_ = sctx.Clear()
	_ = sctx.Flash("success", "Logout successful")
	c.Redirect(http.StatusFound, "/")
}
