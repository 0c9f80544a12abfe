package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Password     string             `bson:"password" json:"-"` // argon2id hash, never returned in JSON
	RegisteredAt time.Time          `bson:"registered_at" json:"registered_at"`
	Avatar       string             `bson:"avatar" json:"avatar"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
