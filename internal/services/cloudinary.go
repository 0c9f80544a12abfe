package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/google/uuid"
)

// imageTransformation shrinks uploads to a 400px-wide webp, mirroring the
// on-disk transcoding the first version of this service did locally.
const imageTransformation = "w_400,c_limit,f_webp,q_70"

type MediaService struct {
	cld *cloudinary.Cloudinary
}

func NewMediaService(cloudName, apiKey, apiSecret string) (*MediaService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &MediaService{cld: cld}, nil
}

// UploadImage stores one image under a uuid-derived public ID and returns the
// URL of the transcoded variant.
func (s *MediaService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	return s.upload(ctx, fileHeader, uploader.UploadParams{
		Folder:         folder,
		PublicID:       uuid.NewString(),
		ResourceType:   "image",
		Transformation: imageTransformation,
	})
}

// UploadVideo stores one video and returns its URL untouched.
func (s *MediaService) UploadVideo(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	return s.upload(ctx, fileHeader, uploader.UploadParams{
		Folder:       folder,
		PublicID:     uuid.NewString(),
		ResourceType: "video",
	})
}

func (s *MediaService) upload(ctx context.Context, fileHeader *multipart.FileHeader, params uploader.UploadParams) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	result, err := s.cld.Upload.Upload(ctx, fileBytes, params)
	if err != nil {
		return "", fmt.Errorf("%w: cloudinary upload: %v", apperr.ErrUpstream, err)
	}
	return result.SecureURL, nil
}
