package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
)

// ProgressFunc is called as the request body is sent.
type ProgressFunc func(sent, total int64)

// File is the optional attachment of a multipart upload.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     io.Reader
}

// Percent is the whole-number share of total already sent.
func Percent(sent, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(sent * 100 / total)
}

// Upload sends fields and file as multipart/form-data, reporting progress as
// the body is written to the connection. file may be nil.
func (c *Client) Upload(ctx context.Context, method, path string, fields map[string]string, file *File, progress ProgressFunc) ([]byte, error) {
	var files []*File
	if file != nil {
		files = append(files, file)
	}
	return c.UploadFiles(ctx, method, path, fields, files, progress)
}

// UploadFiles is Upload with any number of attachments, each under its own field.
func (c *Client) UploadFiles(ctx context.Context, method, path string, fields map[string]string, files []*File, progress ProgressFunc) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, err
		}
	}

	for _, file := range files {
		if file == nil {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(file.Field), escapeQuotes(file.Name)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("failed to read attachment: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", w.FormDataContentType())
	if err := c.authorize(ctx, header); err != nil {
		return nil, err
	}

	var body io.Reader = &buf
	if progress != nil {
		body = &progressReader{r: &buf, total: int64(buf.Len()), fn: progress}
	}
	return c.send(ctx, method, path, body, header)
}

type progressReader struct {
	r     io.Reader
	sent  int64
	total int64
	fn    ProgressFunc
}

func (p *progressReader) Size() int64 {
	return p.total
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
