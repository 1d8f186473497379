package main

import (
	"bytes"
	"fleet-dashboard-service/api"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// openDocument loads an attachment from disk. The content type is sniffed from
// the bytes, so a renamed file is still rejected as a non-PDF. An empty path
// yields nil.
func openDocument(path string) (*api.File, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &api.File{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Content:     bytes.NewReader(data),
	}, nil
}

// uploadProgress prints the whole-number percentage each time it changes.
func uploadProgress(w io.Writer) api.ProgressFunc {
	last := -1
	return func(sent, total int64) {
		if p := api.Percent(sent, total); p != last {
			last = p
			fmt.Fprintf(w, "\ruploading %d%%", p)
			if p == 100 {
				fmt.Fprintln(w)
			}
		}
	}
}
