package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webshop/catalog"
	"webshop/models"
	"webshop/repository"
	"webshop/session"
)

// PageController serves the public pages and the products API.
type PageController struct {
	users    repository.UserRepository
	catalog  *catalog.Catalog
	sessions *session.Manager
	logger   *zap.Logger
}

func NewPageController(users repository.UserRepository, cat *catalog.Catalog, sessions *session.Manager, logger *zap.Logger) *PageController {
	return &PageController{users: users, catalog: cat, sessions: sessions, logger: logger}
}

// Index renders the home page, personalized when a user is logged in.
// GET /
func (pc *PageController) Index(c *gin.Context) {
	sctx := pc.sessions.Context(c)

	var user *models.User
	if email, ok := sctx.Email(); ok {
		found, err := pc.users.FindByEmail(c.Request.Context(), email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			pc.logger.Error("index: user lookup failed", zap.Error(err))
		}
		user = found
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"User":    user,
		"Flashes": sctx.Flashes(),
	})
}

// About renders the static about page.
// GET /about
func (pc *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", nil)
}

// Contact renders the static contact page.
// GET /contact
func (pc *PageController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", nil)
}

// Shop renders the storefront populated from the static catalog.
// GET /shop
func (pc *PageController) Shop(c *gin.Context) {
	c.HTML(http.StatusOK, "shop.html", gin.H{
		"Products": pc.catalog.Products(),
	})
}

// Products returns the catalog as JSON.
// GET /api/products
func (pc *PageController) Products(c *gin.Context) {
	c.JSON(http.StatusOK, pc.catalog.Products())
}
