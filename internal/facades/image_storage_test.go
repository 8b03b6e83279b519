package facades

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "/images/abc", ImageURL("abc"))
}

func TestImageGridFSFacade_Download_MalformedID(t *testing.T) {
	ctx := context.Background()
	// The client connects lazily, so no server is needed here.
	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	facade, err := NewImageGridFSFacade(client.Database("homestay"))
	require.NoError(t, err)

	image, data, err := facade.Download(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Nil(t, image)
	assert.Nil(t, data)
}

func TestImageGridFSFacade_Mongo(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:6",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer mongoC.Terminate(ctx)

	host, err := mongoC.Host(ctx)
	require.NoError(t, err)
	port, err := mongoC.MappedPort(ctx, "27017")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)
	defer client.Disconnect(ctx)
	require.NoError(t, client.Ping(ctx, nil))

	facade, err := NewImageGridFSFacade(client.Database("homestay"))
	require.NoError(t, err)

	t.Run("upload then download", func(t *testing.T) {
		uploaded, err := facade.Upload(ctx, "pixel.png", bytes.NewReader(pngPixel))
		require.NoError(t, err)
		assert.Equal(t, "image/png", uploaded.ContentType)
		assert.Equal(t, int64(len(pngPixel)), uploaded.Size)
		assert.Equal(t, "/images/"+uploaded.ID, uploaded.URL)

		image, data, err := facade.Download(ctx, uploaded.ID)
		require.NoError(t, err)
		assert.Equal(t, pngPixel, data)
		assert.Equal(t, "pixel.png", image.Filename)
		assert.Equal(t, "image/png", image.ContentType)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := facade.Download(ctx, "65a1b2c3d4e5f60718293a4b")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}
