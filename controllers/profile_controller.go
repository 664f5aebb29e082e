package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webshop/models"
	"webshop/repository"
	"webshop/services"
	"webshop/session"
)

// ProfileController serves the profile page and handles the update and
// delete actions posted from it.
type ProfileController struct {
	users     repository.UserRepository
	passwords *services.PasswordService
	sessions  *session.Manager
	logger    *zap.Logger
}

func NewProfileController(users repository.UserRepository, passwords *services.PasswordService, sessions *session.Manager, logger *zap.Logger) *ProfileController {
	return &ProfileController{users: users, passwords: passwords, sessions: sessions, logger: logger}
}

// Show renders the profile page with the user's data and cart. An
// authenticated email whose document no longer exists (deleted in
// another session) forces a logout instead of erroring.
// GET /profile
func (pc *ProfileController) Show(c *gin.Context) {
	sctx := pc.sessions.Context(c)
	email, ok := sctx.Email()
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	user, err := pc.users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		_ = sctx.Clear()
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		pc.logger.Error("profile: user lookup failed", zap.Error(err))
		_ = sctx.Flash("error", "Could not load your profile")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":    user,
		"Cart":    user.Cart,
		"Flashes": sctx.Flashes(),
	})
}

// Handle dispatches the profile form: delete_profile removes the
// account, update_profile overwrites the submitted fields. Both clear
// the session and land on the home page.
// POST /profile
func (pc *ProfileController) Handle(c *gin.Context) {
	sctx := pc.sessions.Context(c)
	email, ok := sctx.Email()
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	switch {
	case c.PostForm("delete_profile") != "":
		if err := pc.users.Delete(c.Request.Context(), email); err != nil {
			pc.logger.Error("profile delete failed", zap.Error(err))
		}
		_ = sctx.Clear()
		c.Redirect(http.StatusFound, "/")

	case c.PostForm("update_profile") != "":
		update := models.UserUpdate{
			Username: c.PostForm("username"),
			Email:    c.PostForm("emailprofile"),
		}
		if password := c.PostForm("passwordprofile"); password != "" {
			hashed, err := pc.passwords.Hash(password)
			if err != nil {
				pc.logger.Error("profile update: hash failed", zap.Error(err))
				_ = sctx.Flash("error", "Could not update your profile")
				c.Redirect(http.StatusFound, "/profile")
				return
			}
			update.Password = hashed
		}
		if err := pc.users.UpdateFields(c.Request.Context(), email, update); err != nil {
			pc.logger.Error("profile update failed", zap.Error(err))
		}
		_ = sctx.Clear()
		c.Redirect(http.StatusFound, "/")

	default:
		c.Redirect(http.StatusFound, "/profile")
	}
}
