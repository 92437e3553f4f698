package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"

	"github.com/frolovkirill/pdf2office/internal/domain"
	"github.com/frolovkirill/pdf2office/internal/workflow"
)

// multipart form overhead on top of the file itself
const uploadSlackBytes = 1 << 20

type Workflow interface {
	Submit(ctx context.Context, ownerID string, upload workflow.Upload, format domain.Format) (*domain.ConversionRecord, error)
	History(ctx context.Context, ownerID string) ([]*domain.ConversionRecord, error)
	OpenResult(ctx context.Context, ownerID, id string) (io.ReadCloser, *domain.ConversionRecord, error)
}

type ConversionsHandler struct {
	workflow Workflow
}

func NewConversionsHandler(wf Workflow) *ConversionsHandler {
	return &ConversionsHandler{workflow: wf}
}

func (h *ConversionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, workflow.MaxUploadBytes+uploadSlackBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, domain.ErrFileTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "exactly one file is expected in the \"file\" field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	format, err := domain.ParseFormat(r.FormValue("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
		return
	}

	upload := workflow.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}

	rec, err := h.workflow.Submit(r.Context(), currentUser(r.Context()).ID, upload, format)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFileTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, domain.ErrUnsupportedType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusAccepted, rec)
}

type HistoryResponse struct {
	Conversions []*domain.ConversionRecord `json:"conversions"`
	Pagination  Pagination                 `json:"pagination"`
}

func (h *ConversionsHandler) History(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.workflow.History(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	total := len(records)
	records = paginate(records, page, limit)

	writeJSON(w, http.StatusOK, HistoryResponse{
		Conversions: records,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}

func (h *ConversionsHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, rec, err := h.workflow.OpenResult(r.Context(), currentUser(r.Context()).ID, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrNotCompleted):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "failed to retrieve converted file", http.StatusBadGateway)
		}
		return
	}
	defer body.Close()

	name := workflow.ConvertedName(rec.OriginalName, rec.TargetFormat)
	w.Header().Set("Content-Type", rec.TargetFormat.MIMEType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	if _, err := io.Copy(w, body); err != nil {
		// headers are out by now, nothing more to report to the client
		return
	}
}

type exportRow struct {
	ID              string `csv:"id"`
	OriginalName    string `csv:"original_name"`
	TargetFormat    string `csv:"target_format"`
	Status          string `csv:"status"`
	DownloadLocator string `csv:"download_locator"`
	CreatedAt       string `csv:"created_at"`
}

// ExportCSV renders the owner's full history as a CSV attachment.
func (h *ConversionsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.workflow.History(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rows := make([]exportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, exportRow{
			ID:              rec.ID,
			OriginalName:    rec.OriginalName,
			TargetFormat:    string(rec.TargetFormat),
			Status:          string(rec.Status),
			DownloadLocator: rec.DownloadLocator,
			CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "conversions.csv"))
	w.Write(data)
}

func paginate(records []*domain.ConversionRecord, page, limit uint64) []*domain.ConversionRecord {
	// compare in uint64 first, a huge page would wrap the product below
	if page-1 > uint64(len(records))/limit {
		return []*domain.ConversionRecord{}
	}

	offset := int((page - 1) * limit)
	if offset >= len(records) {
		return []*domain.ConversionRecord{}
	}

	end := offset + int(limit)
	if end > len(records) {
		end = len(records)
	}

	return records[offset:end]
}
