package domain

import (
	"fmt"
	"time"
)

type Format string

const (
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user-supplied target format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDOCX, FormatXLSX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown target format %q", s)
	}
}

// MIMEType returns the output content type for the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
}

type ConversionRecord struct {
	ID              string    `db:"id"               json:"id"                csv:"id"`
	OwnerID         string    `db:"owner_id"         json:"-"                 csv:"-"`
	OriginalName    string    `db:"original_name"    json:"original_name"     csv:"original_name"`
	OriginalType    string    `db:"original_type"    json:"original_type"     csv:"original_type"`
	TargetFormat    Format    `db:"target_format"    json:"target_format"     csv:"target_format"`
	Status          Status    `db:"status"           json:"status"            csv:"status"`
	DownloadLocator string    `db:"download_locator" json:"download_locator,omitempty" csv:"download_locator"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"        csv:"created_at"`
}
