package services

import (
	"testing"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := &AdminSession{AdminID: "a1", Role: models.RoleAdministrator}
	moderator := &AdminSession{AdminID: "m1", Role: models.RoleModerator}

	tests := []struct {
		name    string
		session *AdminSession
		action  Action
		allowed bool
	}{
		{"administrator lists", admin, ActionListNotes, true},
		{"moderator lists", moderator, ActionListNotes, true},
		{"administrator reviews", admin, ActionReviewNotes, true},
		{"moderator reviews", moderator, ActionReviewNotes, true},
		{"moderator restores", moderator, ActionRestoreNotes, true},
		{"administrator deletes", admin, ActionDeleteNotes, true},
		{"moderator may not delete", moderator, ActionDeleteNotes, false},
		{"moderator views stats", moderator, ActionViewStats, true},
		{"unknown role denied", &AdminSession{AdminID: "x", Role: 42}, ActionListNotes, false},
		{"unknown action denied", admin, Action("notes.purge"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.session, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperr.ErrForbidden)
			}
		})
	}
}
