// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

// fileBlobStorage keeps image content on the local filesystem below a
// single root directory. Object keys map to relative file paths and can
// not escape the root.
type fileBlobStorage struct {
	root   *os.Root
	logger *logger.Logger
}

// NewFileBlobStorage opens (creating if necessary) dir as the storage root.
func NewFileBlobStorage(dir string, log *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create binary data dir: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		log.Err(err).Str("func", "NewFileBlobStorage").Str("dir", dir).Msg("cannot open binary data dir")
		return nil, fmt.Errorf("failed to open binary data dir: %w", err)
	}
	log.Info().Str("dir", dir).Msg("using filesystem blob storage")

	return &fileBlobStorage{root: root, logger: log}, nil
}

func (s *fileBlobStorage) Put(ctx context.Context, key string, content io.Reader, _ int64, _ string) error {
	if !isValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := path.Dir(key); dir != "." {
		if err := s.root.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create object dir: %w", err)
		}
	}

	file, err := s.root.Create(key)
	if err != nil {
		return fmt.Errorf("failed to create object %q: %w", key, err)
	}

	if _, err = io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = s.root.Remove(key)
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStorage.Put").Str("key", key).Msg("error writing object")
		return fmt.Errorf("failed to write object %q: %w", key, err)
	}

	return file.Close()
}

func (s *fileBlobStorage) Delete(_ context.Context, key string) error {
	if !isValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}

	err := s.root.Remove(key)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrObjectNotFound
	}

	return err
}

func (s *fileBlobStorage) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	if !isValidPrefix(prefix) || prefix == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidObjectKey, prefix)
	}

	objects, err := s.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, object := range objects {
		if err = s.root.Remove(object.Key); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("failed to remove object %q: %w", object.Key, err)
		}
		removed++
	}

	// drop the now empty directory tree
	if strings.HasSuffix(prefix, "/") {
		if err = s.root.RemoveAll(strings.TrimSuffix(prefix, "/")); err != nil {
			return removed, fmt.Errorf("failed to remove dir %q: %w", prefix, err)
		}
	}

	return removed, nil
}

func (s *fileBlobStorage) List(ctx context.Context, prefix string) ([]models.BlobInfo, error) {
	result := make([]models.BlobInfo, 0)

	err := fs.WalkDir(s.root.FS(), ".", func(key string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasPrefix(key, prefix) {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		result = append(result, models.BlobInfo{
			Key:          key,
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	return result, nil
}

// Close releases the storage root.
func (s *fileBlobStorage) Close() error {
	return s.root.Close()
}
