package repository

import (
	"context"
	"errors"

	"webshop/models"
)

// ErrNotFound is returned by the finders when no user matches.
var ErrNotFound = errors.New("user not found")

// UserRepository defines data access for user documents and the cart
// embedded in them. Cart mutations are silent no-ops when no user
// matches the email; Delete is idempotent. RemoveCartItem matches on
// exact structural equality: an item whose fields are merely a subset
// of a stored entry's removes nothing.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, email string, update models.UserUpdate) error
	Delete(ctx context.Context, email string) error

	ReplaceCart(ctx context.Context, email string, items []models.CartItem) error
	RemoveCartItem(ctx context.Context, email string, item models.CartItem) error
	UpdateCartQuantity(ctx context.Context, email, itemName string, quantity int) error
}
