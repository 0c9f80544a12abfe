package routes

import (
	"github.com/gnb-666/pgy-travel-back/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux) {
	// Public travel-note routes
	r.Get("/api/notes", handlers.GetTravelNotes)
	r.Get("/api/notes/detail", handlers.GetTravelNoteDetail)
	r.Get("/api/notes/search", handlers.SearchTravelNotes)
	r.Post("/api/notes", handlers.PublishTravelNote)
	r.Get("/api/notes/mine", handlers.GetMyPublish)
	r.Post("/api/notes/delete", handlers.DeleteTravelNote)

	// User account routes
	r.Post("/api/auth/register", handlers.Register)
	r.Post("/api/auth/login", handlers.Login)
	r.Post("/api/auth/avatar", handlers.UpdateAvatar)

	// Media upload routes
	r.Post("/api/upload/image", handlers.UploadImages)
	r.Post("/api/upload/video", handlers.UploadVideo)

	// Text beautification proxy
	r.Post("/api/beautify", handlers.BeautifyText)

	// Staff routes (bearer session token, role policy per action)
	r.Post("/api/admin/login", handlers.AdminLogin)
	r.Post("/api/admin/logout", handlers.AdminLogout)
	r.Post("/api/admin/notes", handlers.AdminGetTravelNotes)
	r.Post("/api/admin/review", handlers.ReviewTravelNote)
	r.Post("/api/admin/notes/restore", handlers.RestoreTravelNote)
	r.Post("/api/admin/notes/delete", handlers.AdminDeleteTravelNote)
	r.Get("/api/admin/stats", handlers.GetDashboardStats)
}
