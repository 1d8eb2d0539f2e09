package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an admin-panel account. Customers never log in, only staff do.
type User struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  *string            `json:"username" validate:"required,min=2,max=100"`
	Password  *string            `json:"password" validate:"required,min=6"`
	User_role *string            `json:"user_role" validate:"required,eq=ADMIN|eq=KITCHEN"`

	Token         *string   `json:"token"`
	Refresh_Token *string   `json:"refresh_token"`
	Created_at    time.Time `json:"created_at"`
	Updated_at    time.Time `json:"updated_at"`
	User_id       string    `json:"user_id"`
}
