package handlers

import (
	"net/http"

	"github.com/gnb-666/pgy-travel-back/internal/models"
	"github.com/gnb-666/pgy-travel-back/internal/services"
)

type PublishNoteRequest struct {
	ID       string   `json:"id,omitempty"`
	AuthorID string   `json:"author_id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	ImgList  []string `json:"img_list"`
	Video    string   `json:"video"`
}

type PublishNoteResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Note    *models.TravelNote `json:"note,omitempty"`
}

type NoteListResponse struct {
	Success bool                    `json:"success"`
	Notes   []models.NoteWithAuthor `json:"notes"`
}

// GetTravelNotes returns the public feed: approved, non-deleted notes joined
// with their authors, newest first.
func GetTravelNotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	notes, err := services.PublicFeed(ctx)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Success: true, Notes: notes})
}

// GetTravelNoteDetail returns one note with its author. ?id= query parameter.
func GetTravelNoteDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	note, err := services.NoteDetail(ctx, r.URL.Query().Get("id"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"note":    note,
	})
}

// SearchTravelNotes is the public substring search over titles and author
// usernames. Only publicly visible notes are searched.
func SearchTravelNotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	notes, err := services.SearchPublicNotes(ctx, r.URL.Query().Get("title"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Success: true, Notes: notes})
}

// PublishTravelNote creates a note or, when an id is supplied, overwrites an
// existing note's content and sends it back to review.
func PublishTravelNote(w http.ResponseWriter, r *http.Request) {
	var req PublishNoteRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	note, err := services.PublishNote(ctx, services.PublishInput{
		ID:       req.ID,
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Content:  req.Content,
		ImgList:  req.ImgList,
		Video:    req.Video,
	})
	if err != nil {
		fail(w, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, PublishNoteResponse{
		Success: true,
		Message: "Note submitted for review",
		Note:    note,
	})
}

// GetMyPublish lists an author's own notes, soft-deleted ones excluded.
// ?authorId= query parameter.
func GetMyPublish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	notes, err := services.MyPublished(ctx, r.URL.Query().Get("authorId"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"notes":   notes,
	})
}

type NoteIDRequest struct {
	ID string `json:"id"`
}

// DeleteTravelNote soft-deletes a note from the owner surface.
func DeleteTravelNote(w http.ResponseWriter, r *http.Request) {
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
