package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/models"
)

type imageService struct {
	bookRepository  store.BookRepository
	imageRepository store.ImageRepository
	blobStorage     store.BlobStorage
	idGenerator     IDGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewImageService(storages *store.Storages, idGenerator IDGenerator, logger *logger.Logger) ImageService {
	return &imageService{
		bookRepository:  storages.BookRepository,
		imageRepository: storages.ImageRepository,
		blobStorage:     storages.BlobStorage,
		idGenerator:     idGenerator,
		now:             time.Now,
		logger:          logger,
	}
}

// UploadImage stores the uploaded content under book_id/file_id/file_name
// and records it. When the row cannot be written the blob is removed again.
func (s *imageService) UploadImage(ctx context.Context, user models.User, upload models.ImageUpload) (models.Image, error) {
	log := logger.FromContext(ctx)

	fileName := SanitizeFileName(upload.FileName)
	if upload.Content == nil || fileName == "" {
		return models.Image{}, ErrMissingFile
	}
	if !IsAllowedImage(fileName) {
		return models.Image{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, upload.FileName)
	}

	book, err := s.bookRepository.FindBookByID(ctx, upload.BookID)
	if errors.Is(err, store.ErrBookNotFound) {
		return models.Image{}, ErrBookNotFound
	}
	if err != nil {
		return models.Image{}, fmt.Errorf("error finding book: %w", err)
	}

	fileID := s.idGenerator.Generate()
	image := models.Image{
		FileID:       fileID,
		FileName:     fileName,
		CreatedDate:  s.now().UTC(),
		S3ObjectName: models.ImageObjectName(book.ID, fileID, fileName),
		UserID:       user.ID,
		BookID:       book.ID,
	}

	if err = s.blobStorage.Put(ctx, image.S3ObjectName, upload.Content, upload.Size, upload.ContentType); err != nil {
		return models.Image{}, fmt.Errorf("error storing image: %w", err)
	}

	created, err := s.imageRepository.CreateImage(ctx, image)
	if err != nil {
		if blobErr := s.blobStorage.Delete(ctx, image.S3ObjectName); blobErr != nil {
			log.Error().Err(blobErr).
				Bool("reconcile", true).
				Str("key", image.S3ObjectName).
				Msg("orphaned image blob left behind")
		}
		return models.Image{}, fmt.Errorf("error saving image: %w", err)
	}
	log.Info().Str("file_id", created.FileID).Str("book_id", created.BookID).Msg("image uploaded")

	return created, nil
}

// DeleteImage removes the image row and then every blob under its prefix.
// A blob failure is logged for reconciliation and does not fail the call.
func (s *imageService) DeleteImage(ctx context.Context, user models.User, bookID, fileID string) (models.Image, error) {
	log := logger.FromContext(ctx)

	image, err := s.imageRepository.FindImageByID(ctx, fileID)
	if errors.Is(err, store.ErrImageNotFound) {
		return models.Image{}, ErrImageNotFound
	}
	if err != nil {
		return models.Image{}, fmt.Errorf("error finding image: %w", err)
	}
	if image.BookID != bookID {
		return models.Image{}, ErrImageNotFound
	}
	if image.UserID != user.ID {
		log.Warn().Str("file_id", fileID).Str("user_id", user.ID).Msg("image delete by non-owner rejected")
		return models.Image{}, ErrNotOwner
	}

	if err = s.imageRepository.DeleteImage(ctx, fileID); err != nil {
		if errors.Is(err, store.ErrImageNotFound) {
			return models.Image{}, ErrImageNotFound
		}
		return models.Image{}, fmt.Errorf("error deleting image: %w", err)
	}

	prefix := models.ImageObjectPrefix(bookID, fileID)
	if _, blobErr := s.blobStorage.DeletePrefix(ctx, prefix); blobErr != nil {
		log.Error().Err(blobErr).
			Bool("reconcile", true).
			Str("prefix", prefix).
			Msg("image blobs were not deleted")
	}

	return image, nil
}

// ReconcileBlobs removes blobs that no image row references. Blobs younger
// than grace are skipped so uploads in flight are not touched.
func (s *imageService) ReconcileBlobs(ctx context.Context, grace time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	names, err := s.imageRepository.ListObjectNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing image rows: %w", err)
	}
	referenced := make(map[string]struct{}, len(names))
	for _, name := range names {
		referenced[name] = struct{}{}
	}

	blobs, err := s.blobStorage.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("error listing blobs: %w", err)
	}

	cutoff := s.now().Add(-grace)
	removed := 0
	var errs []error
	for _, blob := range blobs {
		if _, ok := referenced[blob.Key]; ok || blob.LastModified.After(cutoff) {
			continue
		}

		if err = s.blobStorage.Delete(ctx, blob.Key); err != nil {
			errs = append(errs, fmt.Errorf("delete %q: %w", blob.Key, err))
			continue
		}
		removed++
		log.Info().Str("key", blob.Key).Msg("orphaned blob removed")
	}

	return removed, errors.Join(errs...)
}
