package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore keeps resumes in a directory that is also served statically under URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads"
	}
	return &LocalStore{Dir: dir, URLPrefix: "/" + strings.Trim(urlPrefix, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, objectName string, _ string, r io.Reader) (string, error) {
	p, err := s.path(objectName)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path.Join(s.URLPrefix, objectName), nil
}

func (s *LocalStore) Open(ctx context.Context, objectName string) (io.ReadCloser, error) {
	p, err := s.path(objectName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	return f, err
}

// path rejects names that would escape Dir.
func (s *LocalStore) path(objectName string) (string, error) {
	if objectName == "" || objectName != filepath.Base(objectName) {
		return "", errors.New("storage: invalid object name")
	}
	return filepath.Join(s.Dir, objectName), nil
}
