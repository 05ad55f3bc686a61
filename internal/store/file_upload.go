package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/kessan-converter/models"
)

type fileUploadReader struct{}

// NewFileUploadReader returns an [UploadReader] backed by the local
// filesystem. The document is read as is: no type or size checks happen on
// the client, the backend owns validation.
func NewFileUploadReader() UploadReader {
	return &fileUploadReader{}
}

func (r *fileUploadReader) ReadUpload(ctx context.Context, path string) (models.UploadRequest, error) {
	path = NormalizePath(path)
	if path == "" {
		return models.UploadRequest{}, ErrEmptyPath
	}

	if err := ctx.Err(); err != nil {
		return models.UploadRequest{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.UploadRequest{}, fmt.Errorf("ファイルを開けません: %w", err)
	}
	if !info.Mode().IsRegular() {
		return models.UploadRequest{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotRegularFile)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.UploadRequest{}, fmt.Errorf("ファイルを読み込めません: %w", err)
	}

	return models.UploadRequest{
		FileName: filepath.Base(path),
		Content:  content,
	}, nil
}

// NormalizePath cleans a path typed or dropped into a terminal: surrounding
// quotes are removed, backslash-escaped spaces are unescaped and a leading
// "~" is expanded to the home directory.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if len(path) >= 2 {
		if (path[0] == '"' && path[len(path)-1] == '"') || (path[0] == '\'' && path[len(path)-1] == '\'') {
			path = path[1 : len(path)-1]
		}
	}
	if filepath.Separator == '/' {
		path = strings.ReplaceAll(path, `\ `, " ")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return path
}
