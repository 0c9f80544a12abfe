package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff roles. Administrators hold every capability a moderator does plus
// destructive ones; the authorization policy lives in services/authz.go.
const (
	RoleAdministrator = 0
	RoleModerator     = 1
)

type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // argon2id hash
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Role      int                `bson:"role" json:"role"`
	Nickname  string             `bson:"nickname" json:"nickname"`
}
