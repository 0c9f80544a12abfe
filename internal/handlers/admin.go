package handlers

import (
	"net/http"

	"github.com/gnb-666/pgy-travel-back/internal/models"
	"github.com/gnb-666/pgy-travel-back/internal/services"
)

type AdminListNotesRequest struct {
	Page   int    `json:"page"`
	Size   int    `json:"size"`
	Search string `json:"search"`
	Status *int   `json:"status,omitempty"`
}

type AdminListNotesResponse struct {
	Success bool                    `json:"success"`
	Result  []models.NoteWithAuthor `json:"result"`
	Total   int64                   `json:"total"`
}

// AdminGetTravelNotes is the staff listing: every state and deletion flag is
// visible, filterable by free-text search (or an exact status label) and an
// explicit status code, paginated with a pre-pagination total.
func AdminGetTravelNotes(w http.ResponseWriter, r *http.Request) {
	if _, err := requireStaff(r, services.ActionListNotes); err != nil {
		fail(w, err)
		return
	}

	var req AdminListNotesRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	items, total, err := services.AdminListNotes(ctx, services.ListParams{
		Page:   req.Page,
		Size:   req.Size,
		Search: req.Search,
		Status: req.Status,
	}, statusLabels)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AdminListNotesResponse{
		Success: true,
		Result:  items,
		Total:   total,
	})
}

type ReviewNoteRequest struct {
	ID           string `json:"id"`
	State        int    `json:"state"`
	RejectReason string `json:"rejectReason,omitempty"`
}

// ReviewTravelNote applies a moderator decision to a note.
func ReviewTravelNote(w http.ResponseWriter, r *http.Request) {
	if _, err := requireStaff(r, services.ActionReviewNotes); err != nil {
		fail(w, err)
		return
	}

	var req ReviewNoteRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := services.ReviewNote(ctx, req.ID, req.State, req.RejectReason); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Review saved",
	})
}

// RestoreTravelNote clears the soft-delete flag; the moderation state is
// whatever it was before the delete.
func RestoreTravelNote(w http.ResponseWriter, r *http.Request) {
	if _, err := requireStaff(r, services.ActionRestoreNotes); err != nil {
		fail(w, err)
		return
	}

	var req NoteIDRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := services.RestoreNote(ctx, req.ID); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Note restored",
	})
}

// AdminDeleteTravelNote soft-deletes a note from the staff side.
// Administrator-only per the role policy.
func AdminDeleteTravelNote(w http.ResponseWriter, r *http.Request) {
	if _, err := requireStaff(r, services.ActionDeleteNotes); err != nil {
		fail(w, err)
		return
	}

	var req NoteIDRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := services.SoftDeleteNote(ctx, req.ID); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Note deleted",
	})
}

// GetDashboardStats returns the aggregate counters for the admin dashboard.
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	if _, err := requireStaff(r, services.ActionViewStats); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	stats, err := services.GetDashboardStats(ctx)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}
