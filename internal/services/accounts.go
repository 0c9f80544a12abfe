package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/database"
	"github.com/gnb-666/pgy-travel-back/internal/models"
	"github.com/gnb-666/pgy-travel-back/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const adminsCollection = "admins"

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Username string
	Password string
	Avatar   string
	Phone    string
}

// RegisterUser creates a user account with a hashed credential. Duplicate
// usernames are reported distinctly (unlike login, which never says which
// part was wrong).
func RegisterUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	users := database.DB.Collection(usersCollection)

	count, err := users.CountDocuments(ctx, bson.M{"username": in.Username})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username already taken", apperr.ErrConflict)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     in.Username,
		Password:     hash,
		RegisteredAt: time.Now(),
		Avatar:       in.Avatar,
		Phone:        in.Phone,
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginUser verifies credentials with hash-and-compare. Unknown usernames and
// wrong passwords collapse into the same generic failure.
func LoginUser(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	var user models.User
	err := database.DB.Collection(usersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !valid {
		return nil, fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
	}
	return &user, nil
}

// UpdateAvatar replaces a user's avatar URL.
func UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperr.ErrValidation)
	}
	result, err := database.DB.Collection(usersCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"avatar": avatarURL}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", apperr.ErrNotFound, userID)
	}
	return nil
}

// LoginAdmin verifies a staff credential and returns the account record.
func LoginAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	var admin models.Admin
	err := database.DB.Collection(adminsCollection).FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(password, admin.Password)
	if err != nil || !valid {
		return nil, fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
	}
	return &admin, nil
}
