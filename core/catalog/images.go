package catalog

import (
	"context"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"

	"inventory-sync/core/storage"
)

// ImageFinder locates per-color product images in object storage.
//
// Images are stored under "{prefix}/{manufacturer}/{model}/{color}.{ext}",
// all lowercased with spaces replaced by dashes, e.g.
// "products/apple/iphone-13/midnight-black.png".
type ImageFinder struct {
	client storage.Client
	bucket string
	prefix string
}

// NewImageFinder creates an image finder over the given bucket and prefix.
func NewImageFinder(client storage.Client, bucket, prefix string) *ImageFinder {
	return &ImageFinder{client: client, bucket: bucket, prefix: prefix}
}

// ImagesByColor lists the images stored for a manufacturer/model pair,
// keyed by the color label parsed from each object name.
func (f *ImageFinder) ImagesByColor(ctx context.Context, manufacturer, model string) (map[string]string, error) {
	images := make(map[string]string)

	objectPrefix := path.Join(f.prefix, slug(manufacturer), slug(model)) + "/"

	objects := f.client.ListObjects(ctx, f.bucket, minio.ListObjectsOptions{
		Prefix:    objectPrefix,
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, object.Err
		}
		color := colorFromKey(object.Key)
		if color == "" {
			continue
		}
		images[color] = object.Key
	}

	return images, nil
}

// colorFromKey extracts the color label from an object key, e.g.
// "products/apple/iphone-13/midnight-black.png" -> "midnight-black".
func colorFromKey(key string) string {
	base := path.Base(key)
	ext := path.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// slug lowercases a label and replaces spaces with dashes to match the
// storage layout.
func slug(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}
