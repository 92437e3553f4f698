package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

type GCS struct {
	bucketName string
	bucket     *gcs.BucketHandle
}

func NewGCS(ctx context.Context, bucketName string) (*GCS, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name must be provided")
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCS{
		bucketName: bucketName,
		bucket:     client.Bucket(bucketName),
	}, nil
}

func (g *GCS) Put(ctx context.Context, ownerID, name, contentType string, data []byte) (string, error) {
	object := path.Join("uploads", ownerID, uuid.NewString()+"-"+name)

	writer := g.bucket.Object(object).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write object %s: %w", object, err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", object, err)
	}

	return "gs://" + g.bucketName + "/" + object, nil
}

func (g *GCS) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	rest, ok := strings.CutPrefix(locator, "gs://"+g.bucketName+"/")
	if !ok {
		return nil, fmt.Errorf("unexpected locator %q", locator)
	}

	reader, err := g.bucket.Object(rest).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", rest, err)
	}

	return reader, nil
}
