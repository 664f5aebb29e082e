package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"webshop/controllers"
)

// Controllers bundles everything RegisterRoutes wires onto the engine.
type Controllers struct {
	Pages   *controllers.PageController
	Auth    *controllers.AuthController
	Profile *controllers.ProfileController
	Cart    *controllers.CartController
}

// RegisterRoutes mounts the page routes, the auth flows and the JSON
// cart API.
func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	// Page flows
	r.GET("/", ctrl.Pages.Index)
	r.GET("/about", ctrl.Pages.About)
	r.GET("/contact", ctrl.Pages.Contact)
	r.GET("/shop", ctrl.Pages.Shop)

	r.POST("/login", ctrl.Auth.Login)
	r.GET("/signup", ctrl.Auth.ShowSignup)
	r.POST("/signup", ctrl.Auth.Signup)
	r.POST("/logout", ctrl.Auth.Logout)

	r.GET("/profile", ctrl.Profile.Show)
	r.POST("/profile", ctrl.Profile.Handle)

	// JSON API used by the storefront scripts
	api := r.Group("/")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	{
		api.POST("/checkout", ctrl.Cart.Checkout)
		api.POST("/remove_item", ctrl.Cart.RemoveItem)
		api.POST("/update_quantity", ctrl.Cart.UpdateQuantity)
		api.GET("/api/products", ctrl.Pages.Products)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
}
