package handlers

//go:generate mockgen -source=images.go -destination=images_mock.go -package=handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/homestay/internal/models"
)

// imageFormField is the multipart field holding the upload.
const imageFormField = "file"

// ImageUploader stores uploaded images.
type ImageUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (*models.Image, error)
}

// ImageDownloader loads stored images.
type ImageDownloader interface {
	Download(ctx context.Context, id string) (*models.Image, []byte, error)
}

// UploadImageResponse represents a stored image
// swagger:model UploadImageResponse
type UploadImageResponse struct {
	// default: 65a1b2c3d4e5f60718293a4b
	ID string `json:"id"`

	// Path to put into a home's images
	// default: /images/65a1b2c3d4e5f60718293a4b
	URL string `json:"url"`
}

// NewUploadImageHandler returns an HTTP handler storing a multipart image
// upload of at most maxBytes.
// @Summary Upload image
// @Tags images
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} handlers.UploadImageResponse "Stored image"
// @Failure 400 {object} handlers.ErrorResponse "Missing or oversized file"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /images [post]
// @Security BearerAuth
func NewUploadImageHandler(svc ImageUploader, tokener SessionTokener, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		file, header, err := r.FormFile(imageFormField)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing or invalid file")
			return
		}
		defer file.Close()

		image, err := svc.Upload(ctx, sessionUserID(ctx, r, tokener), header.Filename, file)
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		writeJSON(w, http.StatusCreated, UploadImageResponse{ID: image.ID, URL: image.URL})
	}
}

// NewGetImageHandler returns an HTTP handler serving a stored image.
// @Summary Get image
// @Tags images
// @Produce octet-stream
// @Param id path string true "Image id"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /images/{id} [get]
func NewGetImageHandler(svc ImageDownloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		image, data, err := svc.Download(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.Header().Set("Content-Type", image.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
