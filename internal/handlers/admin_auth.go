package handlers

import (
	"net/http"

	"github.com/gnb-666/pgy-travel-back/internal/services"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Admin   map[string]interface{} `json:"admin,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// AdminLogin verifies a staff credential and issues a session token carrying
// the account's role.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	admin, err := services.LoginAdmin(ctx, req.Username, req.Password)
	if err != nil {
		fail(w, err)
		return
	}

	token, err := services.CreateAdminSession(ctx, admin.ID.Hex(), admin.Role)
	if err != nil {
		fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AdminLoginResponse{
		Success: true,
		Message: "Signed in successfully",
		Admin: map[string]interface{}{
			"id":         admin.ID.Hex(),
			"username":   admin.Username,
			"nickname":   admin.Nickname,
			"role":       admin.Role,
			"created_at": admin.CreatedAt,
		},
		Token: token,
	})
}

// AdminLogout invalidates the caller's session token.
func AdminLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))

	ctx, cancel := requestContext()
	defer cancel()

	if err := services.InvalidateAdminSession(ctx, token); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Signed out",
	})
}
