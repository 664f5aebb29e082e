package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"webshop/models"
)

// MemoryUserRepository is an in-memory UserRepository with the same
// contract as the Mongo implementation. It backs the test suites and
// lets the server run without a database in local development.
//
// Documents live in an ordered slice, not a map keyed by email: like
// the users collection, it holds duplicate emails, finders return the
// first match and Delete removes a single document.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user := r.firstByEmail(email); user != nil {
		return copyUser(user), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, copyUser(user))
	return nil
}

func (r *MemoryUserRepository) UpdateFields(ctx context.Context, email string, update models.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.firstByEmail(email)
	if user == nil {
		return nil
	}
	if update.Username != "" {
		user.Username = update.Username
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Password != "" {
		user.Password = update.Password
	}
	return nil
}

// Delete removes the first document matching email, mirroring
// DeleteOne. Deleting an absent user succeeds.
func (r *MemoryUserRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, user := range r.users {
		if user.Email == email {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryUserRepository) ReplaceCart(ctx context.Context, email string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.firstByEmail(email)
	if user == nil {
		return nil
	}
	// nil coerces to an empty array, as stored by the Mongo impl.
	user.Cart = append(make([]models.CartItem, 0, len(items)), items...)
	return nil
}

func (r *MemoryUserRepository) RemoveCartItem(ctx context.Context, email string, item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.firstByEmail(email)
	if user == nil {
		return nil
	}
	kept := user.Cart[:0]
	for _, existing := range user.Cart {
		if !existing.Equals(item) {
			kept = append(kept, existing)
		}
	}
	user.Cart = kept
	return nil
}

func (r *MemoryUserRepository) UpdateCartQuantity(ctx context.Context, email, itemName string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.firstByEmail(email)
	if user == nil {
		return nil
	}
	for i := range user.Cart {
		if user.Cart[i].Name == itemName {
			user.Cart[i].Quantity = quantity
			break
		}
	}
	return nil
}

func (r *MemoryUserRepository) firstByEmail(email string) *models.User {
	for _, user := range r.users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

func copyUser(u *models.User) *models.User {
	out := *u
	out.Cart = append([]models.CartItem(nil), u.Cart...)
	return &out
}
