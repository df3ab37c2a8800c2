package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventory-sync/core/storage/mocks"
)

func objectStream(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, object := range objects {
		ch <- object
	}
	close(ch)
	return ch
}

func TestImagesByColor(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "catalog", minio.ListObjectsOptions{
		Prefix:    "products/apple/iphone-13/",
		Recursive: true,
	}).Return(objectStream(
		minio.ObjectInfo{Key: "products/apple/iphone-13/midnight-black.png"},
		minio.ObjectInfo{Key: "products/apple/iphone-13/starlight.jpg"},
	))

	finder := NewImageFinder(client, "catalog", "products")

	images, err := finder.ImagesByColor(context.Background(), "Apple", "iPhone 13")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"midnight-black": "products/apple/iphone-13/midnight-black.png",
		"starlight":      "products/apple/iphone-13/starlight.jpg",
	}, images)
	client.AssertExpectations(t)
}

func TestImagesByColor_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "catalog", mock.Anything).
		Return(objectStream(minio.ObjectInfo{Err: errors.New("access denied")}))

	finder := NewImageFinder(client, "catalog", "products")

	_, err := finder.ImagesByColor(context.Background(), "Apple", "iPhone 13")
	assert.Error(t, err)
}

func TestImagesByColor_Empty(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "catalog", mock.Anything).
		Return(objectStream())

	finder := NewImageFinder(client, "catalog", "products")

	images, err := finder.ImagesByColor(context.Background(), "Globex", "G9")
	assert.NoError(t, err)
	assert.Empty(t, images)
}
