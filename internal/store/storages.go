package store

import (
	"context"
	"errors"
	"io"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
)

// Storages groups every repository and the blob storage used by services.
type Storages struct {
	UserRepository  UserRepository
	BookRepository  BookRepository
	ImageRepository ImageRepository
	BlobStorage     BlobStorage

	db *DB
}

// NewStorages connects the database, applies migrations and opens the blob
// storage. An S3 endpoint takes precedence over a local data directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	var blobs BlobStorage
	if cfg.Objects.Endpoint != "" {
		blobs, err = NewMinioBlobStorage(ctx, cfg.Objects, log)
	} else {
		blobs, err = NewFileBlobStorage(cfg.Files.BinaryDataDir, log)
	}
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		BookRepository:  NewBookRepository(db, log),
		ImageRepository: NewImageRepository(db, log),
		BlobStorage:     blobs,
		db:              db,
	}, nil
}

func (s *Storages) Close() error {
	var errs []error
	if closer, ok := s.BlobStorage.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
