package api

import (
	"bytes"
	"fleet-dashboard-service/validation"
	"fmt"
	"io"
)

// pdfAttachment buffers f and checks it is a PDF within the upload limit. A nil
// f is reported as a missing field when required, and passes otherwise.
func pdfAttachment(f *File, required bool) (*File, error) {
	if f == nil || f.Content == nil {
		if required {
			field := "file"
			if f != nil && f.Field != "" {
				field = f.Field
			}
			return nil, validation.Required(nil, field, "")
		}
		return nil, nil
	}

	// One byte past the limit is enough to know it is too large.
	data, err := io.ReadAll(io.LimitReader(f.Content, validation.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	field := f.Field
	if field == "" {
		field = "file"
	}
	if err := validation.DocumentField(field, f.ContentType, int64(len(data))); err != nil {
		return nil, err
	}

	checked := *f
	checked.Content = bytes.NewReader(data)
	return &checked, nil
}
