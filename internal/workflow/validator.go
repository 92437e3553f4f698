package workflow

import "github.com/frolovkirill/pdf2office/internal/domain"

const (
	AcceptedInputType = "application/pdf"
	MaxUploadBytes    = 10 << 20
)

// Upload carries the submitted file as captured at the HTTP boundary.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// ValidateUpload checks the declared content type, then the size.
// It is a pure function: rejections happen before any record exists.
func ValidateUpload(u Upload) error {
	if u.ContentType != AcceptedInputType {
		return domain.ErrUnsupportedType
	}

	if u.Size > MaxUploadBytes {
		return domain.ErrFileTooLarge
	}

	return nil
}
