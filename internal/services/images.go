package services

//go:generate mockgen -source=images.go -destination=images_mock.go -package=services

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/facades"
	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
)

// ImageStorage stores and loads image files.
type ImageStorage interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*models.Image, error)
	Download(ctx context.Context, id string) (*models.Image, []byte, error)
}

// ImageService uploads and serves listing images.
type ImageService struct {
	storage ImageStorage
}

func NewImageService(storage ImageStorage) *ImageService {
	return &ImageService{storage: storage}
}

// Upload stores an image uploaded by userID.
func (s *ImageService) Upload(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (*models.Image, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		filename = "image"
	}

	image, err := s.storage.Upload(ctx, filename, r)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to upload image", "user_id", userID, "filename", filename, "error", err)
		return nil, err
	}
	logger.FromContext(ctx).Infow("image uploaded", "user_id", userID, "image_id", image.ID, "size", image.Size)
	return image, nil
}

// Download returns an image and its contents.
func (s *ImageService) Download(ctx context.Context, id string) (*models.Image, []byte, error) {
	image, data, err := s.storage.Download(ctx, id)
	if errors.Is(err, facades.ErrFileNotFound) {
		return nil, nil, ErrImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to download image", "image_id", id, "error", err)
		return nil, nil, err
	}
	return image, data, nil
}
