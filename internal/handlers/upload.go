package handlers

import (
	"fmt"
	"net/http"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/config"
	"github.com/gnb-666/pgy-travel-back/internal/services"
)

var mediaService *services.MediaService

// InitMediaService wires the Cloudinary-backed media service. Uploads return
// 500 while it is unset.
func InitMediaService(cfg *config.Config) error {
	service, err := services.NewMediaService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	mediaService = service
	return nil
}

const (
	maxUploadMemory = 32 << 20 // 32MB
	maxImagesPerReq = 6
)

type UploadImagesResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	URLs    []string `json:"urls"`
}

// UploadImages accepts up to 6 images in the "file" multipart field and
// returns the URLs of their transcoded variants.
func UploadImages(w http.ResponseWriter, r *http.Request) {
	if mediaService == nil {
		fail(w, fmt.Errorf("%w: media service not configured", apperr.ErrUpstream))
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, fmt.Errorf("%w: failed to parse form", apperr.ErrValidation))
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		fail(w, fmt.Errorf("%w: no files provided", apperr.ErrValidation))
		return
	}
	if len(files) > maxImagesPerReq {
		fail(w, fmt.Errorf("%w: at most %d images per request", apperr.ErrValidation, maxImagesPerReq))
		return
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		url, err := mediaService.UploadImage(r.Context(), fileHeader, "travel-notes")
		if err != nil {
			fail(w, err)
			return
		}
		urls = append(urls, url)
	}

	writeJSON(w, http.StatusOK, UploadImagesResponse{Success: true, URLs: urls})
}

type UploadVideoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// UploadVideo accepts a single video in the "video" multipart field.
func UploadVideo(w http.ResponseWriter, r *http.Request) {
	if mediaService == nil {
		fail(w, fmt.Errorf("%w: media service not configured", apperr.ErrUpstream))
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, fmt.Errorf("%w: failed to parse form", apperr.ErrValidation))
		return
	}

	_, fileHeader, err := r.FormFile("video")
	if err != nil {
		fail(w, fmt.Errorf("%w: no video provided", apperr.ErrValidation))
		return
	}

	url, err := mediaService.UploadVideo(r.Context(), fileHeader, "travel-notes/videos")
	if err != nil {
		fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UploadVideoResponse{
		Success: true,
		Message: "Video uploaded successfully",
		Path:    url,
	})
}
