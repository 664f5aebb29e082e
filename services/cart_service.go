package services

import (
	"context"

	"webshop/models"
	"webshop/repository"
)

// CartService mutates the cart embedded in a user document. All
// operations are caller-trusted and silently succeed when no user
// matches the email.
type CartService struct {
	users repository.UserRepository
}

func NewCartService(users repository.UserRepository) *CartService {
	return &CartService{users: users}
}

// Replace overwrites the whole cart with items, order preserved and
// duplicates kept as submitted.
func (s *CartService) Replace(ctx context.Context, email string, items []models.CartItem) error {
	return s.users.ReplaceCart(ctx, email, items)
}

// RemoveItem removes every cart entry structurally equal to item.
func (s *CartService) RemoveItem(ctx context.Context, email string, item models.CartItem) error {
	return s.users.RemoveCartItem(ctx, email, item)
}

// UpdateQuantity sets the quantity of the first entry named itemName.
// No bound is enforced on quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, email, itemName string, quantity int) error {
	return s.users.UpdateCartQuantity(ctx, email, itemName, quantity)
}
