package handlers

import (
	"net/http"

	"github.com/gnb-666/pgy-travel-back/internal/services"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatarUrl"`
	Phone     string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    map[string]interface{} `json:"user,omitempty"`
}

// Register creates a user account. Duplicate usernames are reported as a
// conflict; login failures later never reveal which credential was wrong.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := services.RegisterUser(ctx, services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Avatar:   req.AvatarURL,
		Phone:    req.Phone,
	})
	if err != nil {
		fail(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, UserResponse{
		Success: true,
		Message: "Registered successfully",
		User: map[string]interface{}{
			"id":            user.ID.Hex(),
			"username":      user.Username,
			"avatar":        user.Avatar,
			"registered_at": user.RegisteredAt,
		},
	})
}

// Login verifies user credentials and returns the profile.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := services.LoginUser(ctx, req.Username, req.Password)
	if err != nil {
		fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		Success: true,
		Message: "Signed in successfully",
		User: map[string]interface{}{
			"id":            user.ID.Hex(),
			"username":      user.Username,
			"avatar":        user.Avatar,
			"phone":         user.Phone,
			"registered_at": user.RegisteredAt,
		},
	})
}

type UpdateAvatarRequest struct {
	UserID    string `json:"user_id"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateAvatar replaces the user's avatar URL.
func UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req UpdateAvatarRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := services.UpdateAvatar(ctx, req.UserID, req.AvatarURL); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Avatar updated",
	})
}
