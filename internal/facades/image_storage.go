package facades

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
)

// ErrFileNotFound is returned when no stored file matches the requested id.
var ErrFileNotFound = errors.New("file not found")

const (
	imagesBucket   = "images"
	contentTypeKey = "contentType"
)

// ImageURL returns the public path an image is served from.
func ImageURL(id string) string {
	return "/images/" + id
}

// ImageGridFSFacade stores listing images in a MongoDB GridFS bucket.
type ImageGridFSFacade struct {
	bucket *gridfs.Bucket
}

// NewImageGridFSFacade creates a facade over the "images" bucket of db.
func NewImageGridFSFacade(db *mongo.Database) (*ImageGridFSFacade, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(imagesBucket))
	if err != nil {
		return nil, fmt.Errorf("creating gridfs bucket: %w", err)
	}
	return &ImageGridFSFacade{bucket: bucket}, nil
}

// Upload stores the contents of r under filename. The content type is
// sniffed from the data and kept in the file metadata.
func (f *ImageGridFSFacade) Upload(ctx context.Context, filename string, r io.Reader) (*models.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	contentType := mimetype.Detect(data).String()

	opts := options.GridFSUpload().SetMetadata(bson.M{contentTypeKey: contentType})
	id, err := f.bucket.UploadFromStream(filename, bytes.NewReader(data), opts)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to upload image to gridfs", "filename", filename, "error", err)
		return nil, err
	}

	return &models.Image{
		ID:          id.Hex(),
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         ImageURL(id.Hex()),
	}, nil
}

// Download returns the stored image and its bytes. Malformed and unknown
// ids both yield ErrFileNotFound.
func (f *ImageGridFSFacade) Download(ctx context.Context, id string) (*models.Image, []byte, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, ErrFileNotFound
	}

	stream, err := f.bucket.OpenDownloadStream(objID)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, nil, ErrFileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to open gridfs download stream", "id", id, "error", err)
		return nil, nil, err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, nil, fmt.Errorf("reading image %s: %w", id, err)
	}

	file := stream.GetFile()
	image := &models.Image{
		ID:       id,
		Filename: file.Name,
		Size:     file.Length,
		URL:      ImageURL(id),
	}
	if len(file.Metadata) > 0 {
		if ct, ok := file.Metadata.Lookup(contentTypeKey).StringValueOK(); ok {
			image.ContentType = ct
		}
	}
	if image.ContentType == "" {
		image.ContentType = mimetype.Detect(data).String()
	}

	return image, data, nil
}
