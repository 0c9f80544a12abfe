package services

import (
	"context"
	"log"
	"time"

	"github.com/gnb-666/pgy-travel-back/internal/config"
	"github.com/gnb-666/pgy-travel-back/internal/database"
	"github.com/gnb-666/pgy-travel-back/internal/models"
	"github.com/gnb-666/pgy-travel-back/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnsureDefaultAdmins seeds the administrator and auditor accounts when they
// do not exist yet. Existing accounts are never touched, so rotated passwords
// survive restarts.
func EnsureDefaultAdmins(ctx context.Context, cfg *config.Config) error {
	defaults := []struct {
		username string
		password string
		role     int
		nickname string
	}{
		{cfg.DefaultAdminUsername, cfg.DefaultAdminPassword, models.RoleAdministrator, "管理员A"},
		{cfg.DefaultAuditorUsername, cfg.DefaultAuditorPassword, models.RoleModerator, "审核员B"},
	}

	admins := database.DB.Collection(adminsCollection)
	for _, d := range defaults {
		count, err := admins.CountDocuments(ctx, bson.M{"username": d.username})
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := utils.HashPassword(d.password)
		if err != nil {
			return err
		}
		admin := models.Admin{
			ID:        primitive.NewObjectID(),
			Username:  d.username,
			Password:  hash,
			CreatedAt: time.Now(),
			Role:      d.role,
			Nickname:  d.nickname,
		}
		if _, err := admins.InsertOne(ctx, admin); err != nil {
			return err
		}
		log.Printf("seeded staff account %q (role %d)", d.username, d.role)
	}
	return nil
}
