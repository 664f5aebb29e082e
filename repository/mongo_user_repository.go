package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"webshop/models"
)

// MongoUserRepository implements UserRepository against the users
// collection of a MongoDB database.
type MongoUserRepository struct {
	users *mongo.Collection
}

// NewMongoUserRepository creates a repository over db's users collection.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{users: db.Collection("users")}
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// UpdateFields overwrites only the non-empty fields of update on the
// user matching email. An all-empty update is a no-op.
func (r *MongoUserRepository) UpdateFields(ctx context.Context, email string, update models.UserUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	set := bson.M{}
	if update.Username != "" {
		set["username"] = update.Username
	}
	if update.Email != "" {
		set["email"] = update.Email
	}
	if update.Password != "" {
		set["password"] = update.Password
	}
	_, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user fields: %w", err)
	}
	return nil
}

// Delete removes the user document. Deleting an absent user succeeds.
func (r *MongoUserRepository) Delete(ctx context.Context, email string) error {
	if _, err := r.users.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ReplaceCart overwrites the cart array wholesale with items. No
// deduplication or validation is applied; a missing user matches
// nothing and the call still succeeds.
func (r *MongoUserRepository) ReplaceCart(ctx context.Context, email string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	_, err := r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"cart": items}},
	)
	if err != nil {
		return fmt.Errorf("replace cart: %w", err)
	}
	return nil
}

// RemoveCartItem removes every cart entry structurally equal to item:
// all fields must match, extras included. A $pull with a plain document
// treats it as per-element conditions and would also remove entries
// that merely contain the submitted fields, so the cart is filtered
// here and written back instead.
func (r *MongoUserRepository) RemoveCartItem(ctx context.Context, email string, item models.CartItem) error {
	user, err := r.findOne(ctx, bson.M{"email": email})
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	kept := make([]models.CartItem, 0, len(user.Cart))
	for _, existing := range user.Cart {
		if !existing.Equals(item) {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(user.Cart) {
		return nil
	}

	_, err = r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"cart": kept}},
	)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// UpdateCartQuantity sets the quantity of the first cart entry named
// itemName via the positional operator. No match, no change.
func (r *MongoUserRepository) UpdateCartQuantity(ctx context.Context, email, itemName string, quantity int) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"email": email, "cart.name": itemName},
		bson.M{"$set": bson.M{"cart.$.quantity": quantity}},
	)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}
