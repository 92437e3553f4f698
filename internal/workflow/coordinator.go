package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

// Coordinator drives a submitted file through validate, persist, convert,
// upload and reconcile. Each submission runs as its own goroutine; the only
// state shared between them is the keyed projection.
type Coordinator struct {
	log            *slog.Logger
	records        RecordStore
	blobs          BlobStore
	converter      Converter
	projection     *Projection
	convertTimeout time.Duration
	wg             sync.WaitGroup
}

func NewCoordinator(
	log *slog.Logger,
	records RecordStore,
	blobs BlobStore,
	converter Converter,
	convertTimeout time.Duration,
) *Coordinator {
	return &Coordinator{
		log:            log,
		records:        records,
		blobs:          blobs,
		converter:      converter,
		projection:     NewProjection(),
		convertTimeout: convertTimeout,
	}
}

// Submit validates the upload and creates the durable record. On success the
// record is already visible in History with status processing, and conversion
// continues in the background. Validation and creation failures surface to the
// caller directly: no record exists for either.
func (c *Coordinator) Submit(ctx context.Context, ownerID string, upload Upload, format domain.Format) (*domain.ConversionRecord, error) {
	if err := ValidateUpload(upload); err != nil {
		return nil, err
	}

	rec, err := c.records.Create(ctx, ownerID, upload.Name, upload.ContentType, format)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion record: %w", err)
	}

	// Published before conversion starts so long conversions show up as a
	// pending entry rather than a silent delay.
	c.projection.Replace(*rec)

	c.wg.Add(1)
	go c.run(*rec, upload.Data)

	return rec, nil
}

// run executes the asynchronous stages of one workflow. It never returns an
// error: every stage failure is contained here and mapped to the failed
// terminal status, so one request cannot take down another.
func (c *Coordinator) run(rec domain.ConversionRecord, data []byte) {
	defer c.wg.Done()

	// Detached from the HTTP request: a client disconnect must not abort a
	// workflow already submitted.
	ctx := context.Background()

	log := c.log.With(
		slog.String("conversion_id", rec.ID),
		slog.String("owner_id", rec.OwnerID),
		slog.String("target_format", string(rec.TargetFormat)),
	)

	converted, err := c.convert(ctx, data, rec.TargetFormat)
	if err != nil {
		log.ErrorContext(ctx, "conversion failed", slog.String("err", err.Error()))
		c.reconcile(ctx, log, rec, domain.StatusFailed, "")
		return
	}

	locator, err := c.blobs.Put(ctx, rec.OwnerID, ConvertedName(rec.OriginalName, rec.TargetFormat), rec.TargetFormat.MIMEType(), converted)
	if err != nil {
		log.ErrorContext(ctx, "failed to upload converted file", slog.String("err", err.Error()))
		c.reconcile(ctx, log, rec, domain.StatusFailed, "")
		return
	}

	c.reconcile(ctx, log, rec, domain.StatusCompleted, locator)
}

func (c *Coordinator) convert(ctx context.Context, data []byte, format domain.Format) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.convertTimeout)
	defer cancel()

	return c.converter.Convert(ctx, data, format)
}

// reconcile lands the terminal status. The record store is the source of
// truth; when its update succeeds the in-flight snapshot is dropped and the
// durable row takes over. When it fails, the local snapshot keeps the intended
// terminal state so the owner is not stuck looking at "processing", and the
// divergence is logged rather than surfaced.
func (c *Coordinator) reconcile(ctx context.Context, log *slog.Logger, rec domain.ConversionRecord, status domain.Status, locator string) {
	if !rec.Status.CanTransition(status) {
		log.WarnContext(ctx, "illegal status transition skipped",
			slog.String("from", string(rec.Status)),
			slog.String("to", string(status)),
		)
		return
	}

	rec.Status = status
	rec.DownloadLocator = locator

	if err := c.records.UpdateStatus(ctx, rec.ID, status, locator); err != nil {
		log.WarnContext(ctx, "record store update failed, local projection keeps terminal state",
			slog.String("status", string(status)),
			slog.String("err", err.Error()),
		)
		c.projection.Replace(rec)
		return
	}

	c.projection.Drop(rec.ID)

	log.InfoContext(ctx, "conversion reconciled", slog.String("status", string(status)))
}

// History returns the owner's records newest first, durable rows merged with
// any in-flight snapshots of this session.
func (c *Coordinator) History(ctx context.Context, ownerID string) ([]*domain.ConversionRecord, error) {
	durable, err := c.records.Query(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion records: %w", err)
	}

	return c.projection.Merge(ownerID, durable), nil
}

// OpenResult resolves a completed record's locator for download. It is a pure
// read: retrieval failures never change the record's status.
func (c *Coordinator) OpenResult(ctx context.Context, ownerID, id string) (io.ReadCloser, *domain.ConversionRecord, error) {
	rec, err := c.records.Record(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get conversion record: %w", err)
	}

	if rec.OwnerID != ownerID {
		return nil, nil, domain.ErrRecordNotFound
	}

	if rec.Status != domain.StatusCompleted {
		return nil, nil, domain.ErrNotCompleted
	}

	body, err := c.blobs.Open(ctx, rec.DownloadLocator)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open converted file: %w", err)
	}

	return body, rec, nil
}

// Wait blocks until all in-flight workflows reach a terminal state.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// ConvertedName derives the output file name the way the artifact is stored:
// the original base name with the target format's extension.
func ConvertedName(original string, format domain.Format) string {
	return strings.TrimSuffix(original, filepath.Ext(original)) + "." + string(format)
}
