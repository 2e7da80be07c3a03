package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store persists uploaded resumes and reads them back for text extraction.
type Store interface {
	// Save writes r under objectName and returns the URL recorded on the user.
	Save(ctx context.Context, objectName string, contentType string, r io.Reader) (fileURL string, err error)
	Open(ctx context.Context, objectName string) (io.ReadCloser, error)
}

var ErrObjectNotFound = errors.New("storage: object not found")

// ObjectName builds a collision-free name that keeps the original extension.
func ObjectName(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), ext)
}
