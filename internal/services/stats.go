package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gnb-666/pgy-travel-back/internal/database"
	"github.com/gnb-666/pgy-travel-back/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	statsCacheKey = "cache:dashboard_stats"
	statsCacheTTL = time.Minute
)

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalNotes    int64 `json:"total_notes"`
	TotalUsers    int64 `json:"total_users"`
	PendingNotes  int64 `json:"pending_notes"`
	ApprovedNotes int64 `json:"approved_notes"`
	RejectedNotes int64 `json:"rejected_notes"`
}

// GetDashboardStats computes the dashboard counters, serving from the Redis
// cache when a fresh copy exists. Cache failures fall through to the
// database; they are logged, never surfaced.
func GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if cached, err := database.RedisClient.Get(ctx, statsCacheKey).Result(); err == nil {
		var stats DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	notes := database.DB.Collection(notesCollection)

	stats := &DashboardStats{}
	var err error
	if stats.TotalNotes, err = notes.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = database.DB.Collection(usersCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	for state, dest := range map[int]*int64{
		models.StatePending:  &stats.PendingNotes,
		models.StateApproved: &stats.ApprovedNotes,
		models.StateRejected: &stats.RejectedNotes,
	} {
		count, err := notes.CountDocuments(ctx, bson.M{"state": state, "is_deleted": false})
		if err != nil {
			return nil, err
		}
		*dest = count
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := database.RedisClient.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
			log.Printf("dashboard stats cache write failed: %v", err)
		}
	}
	return stats, nil
}
