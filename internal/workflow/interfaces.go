package workflow

import (
	"context"
	"io"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

type RecordStore interface {
	Create(ctx context.Context, ownerID, originalName, originalType string, format domain.Format) (*domain.ConversionRecord, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, locator string) error
	Record(ctx context.Context, id string) (*domain.ConversionRecord, error)
	Query(ctx context.Context, ownerID string) ([]*domain.ConversionRecord, error)
}

type BlobStore interface {
	Put(ctx context.Context, ownerID, name, contentType string, data []byte) (locator string, err error)
	Open(ctx context.Context, locator string) (io.ReadCloser, error)
}

type Converter interface {
	Convert(ctx context.Context, data []byte, format domain.Format) ([]byte, error)
}
