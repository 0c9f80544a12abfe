package services

import (
	"fmt"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/models"
)

// Action names a staff operation that requires authorization.
type Action string

const (
	ActionListNotes    Action = "notes.list"
	ActionReviewNotes  Action = "notes.review"
	ActionRestoreNotes Action = "notes.restore"
	ActionDeleteNotes  Action = "notes.delete"
	ActionViewStats    Action = "stats.view"
)

// rolePolicy is the explicit per-operation capability table. Moderators can
// list, review and restore; deleting a user's note from the admin side is
// reserved for administrators.
var rolePolicy = map[Action][]int{
	ActionListNotes:    {models.RoleAdministrator, models.RoleModerator},
	ActionReviewNotes:  {models.RoleAdministrator, models.RoleModerator},
	ActionRestoreNotes: {models.RoleAdministrator, models.RoleModerator},
	ActionDeleteNotes:  {models.RoleAdministrator},
	ActionViewStats:    {models.RoleAdministrator, models.RoleModerator},
}

// Authorize checks the session's role against the policy table.
func Authorize(session *AdminSession, action Action) error {
	roles, ok := rolePolicy[action]
	if !ok {
		return fmt.Errorf("%w: unknown action %s", apperr.ErrForbidden, action)
	}
	for _, role := range roles {
		if session.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %d may not perform %s", apperr.ErrForbidden, session.Role, action)
}
