package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webshop/models"
	"webshop/services"
	"webshop/session"
)

// CartController handles the JSON cart API. Every route needs an
// authenticated session; an anonymous caller gets an error payload,
// never a crash.
type CartController struct {
	carts    *services.CartService
	sessions *session.Manager
	logger   *zap.Logger
}

func NewCartController(carts *services.CartService, sessions *session.Manager, logger *zap.Logger) *CartController {
	return &CartController{carts: carts, sessions: sessions, logger: logger}
}

// Checkout replaces the user's cart wholesale with the submitted items.
// The list is caller-trusted: order is preserved and duplicate names
// are kept as submitted.
// POST /checkout
func (cc *CartController) Checkout(c *gin.Context) {
	var req struct {
		CartItems []models.CartItem `json:"cartItems"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email, ok := cc.sessions.Context(c).Email()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	if err := cc.carts.Replace(c.Request.Context(), email, req.CartItems); err != nil {
		cc.logger.Error("checkout failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checkout successful"})
}

// RemoveItem removes every cart entry structurally equal to the
// submitted item.
// POST /remove_item
func (cc *CartController) RemoveItem(c *gin.Context) {
	var req struct {
		ItemToRemove models.CartItem `json:"itemToRemove"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email, ok := cc.sessions.Context(c).Email()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	if err := cc.carts.RemoveItem(c.Request.Context(), email, req.ItemToRemove); err != nil {
		cc.logger.Error("remove item failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}

// UpdateQuantity sets the quantity of the first cart entry matching
// the submitted name. A missing item is a silent no-op.
// POST /update_quantity
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		ItemName        string `json:"itemName"`
		UpdatedQuantity int    `json:"updatedQuantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email, ok := cc.sessions.Context(c).Email()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
		return
	}

	if err := cc.carts.UpdateQuantity(c.Request.Context(), email, req.ItemName, req.UpdatedQuantity); err != nil {
		cc.logger.Error("update quantity failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated successfully"})
}
