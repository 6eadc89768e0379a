package blobstore

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Store хранит изображения чеков в файловой системе afero.
// В рабочем режиме это каталог на диске, в тестах память.
type Store struct {
	fs        afero.Fs
	publicURL string
}

// New создает хранилище в каталоге root файловой системы fs.
// Если задан publicURL, Put возвращает полную ссылку на файл.
func New(fs afero.Fs, root, publicURL string) *Store {
	if root != "" {
		fs = afero.NewBasePathFs(fs, root)
	}
	return &Store{
		fs:        fs,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// NewOS создает хранилище на локальном диске
func NewOS(root, publicURL string) *Store {
	return New(afero.NewOsFs(), root, publicURL)
}

// Put сохраняет data по относительному пути p и возвращает ссылку на файл
func (s *Store) Put(ctx context.Context, p string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := path.Clean("/" + p)
	if clean == "/" {
		return "", fmt.Errorf("blobstore: empty path")
	}

	if err := s.fs.MkdirAll(path.Dir(clean), 0o755); err != nil {
		return "", fmt.Errorf("blobstore: failed to create dir: %w", err)
	}

	if err := afero.WriteFile(s.fs, clean, data, 0o644); err != nil {
		return "", fmt.Errorf("blobstore: failed to write %s: %w", clean, err)
	}

	ref := strings.TrimPrefix(clean, "/")
	if s.publicURL != "" {
		return s.publicURL + "/" + ref, nil
	}
	return ref, nil
}

// Ping проверяет, что корень хранилища доступен
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.MkdirAll("/", 0o755); err != nil {
		return fmt.Errorf("blobstore: root unavailable: %w", err)
	}
	if _, err := s.fs.Stat("/"); err != nil {
		return fmt.Errorf("blobstore: root unavailable: %w", err)
	}
	return nil
}
