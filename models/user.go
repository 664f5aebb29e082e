package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the users collection. The cart is embedded
// directly in the user document; there is no separate cart collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Cart     []CartItem         `bson:"cart,omitempty" json:"cart"`
}

// UserUpdate carries a partial profile update. Empty fields are left
// untouched on the stored document. Password must already be hashed.
type UserUpdate struct {
	Username string
	Email    string
	Password string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == "" && u.Email == "" && u.Password == ""
}
