package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/adapter"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/internal/store"
	"github.com/shahparag-spring2021/webapp/internal/validators"
	"github.com/shahparag-spring2021/webapp/models"
)

type bookService struct {
	bookRepository  store.BookRepository
	imageRepository store.ImageRepository
	blobStorage     store.BlobStorage
	notifier        notifier
	validator       validators.Validator
	idGenerator     IDGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewBookService(
	storages *store.Storages,
	publisher adapter.Publisher,
	validator validators.Validator,
	idGenerator IDGenerator,
	publicURL string,
	logger *logger.Logger,
) BookService {
	return &bookService{
		bookRepository:  storages.BookRepository,
		imageRepository: storages.ImageRepository,
		blobStorage:     storages.BlobStorage,
		notifier:        notifier{publisher: publisher, publicURL: publicURL, now: time.Now},
		validator:       validator,
		idGenerator:     idGenerator,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}

	return books, nil
}

// GetBook returns the book with its images embedded when there are any.
func (s *bookService) GetBook(ctx context.Context, id string) (models.BookDetails, error) {
	book, err := s.findBook(ctx, id)
	if err != nil {
		return models.BookDetails{}, err
	}

	images, err := s.imageRepository.ListImagesByBook(ctx, id)
	if err != nil {
		return models.BookDetails{}, fmt.Errorf("error listing book images: %w", err)
	}

	details := models.BookDetails{Book: book}
	if len(images) > 0 {
		details.Images = images
	}

	return details, nil
}

func (s *bookService) CreateBook(ctx context.Context, user models.User, req models.CreateBookRequest) (models.Book, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrMissingField, err)
	}

	book, err := s.bookRepository.CreateBook(ctx, models.Book{
		ID:            s.idGenerator.Generate(),
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedDate: req.PublishedDate,
		BookCreated:   s.now().UTC(),
		UserID:        user.ID,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}
	logger.FromContext(ctx).Info().Str("book_id", book.ID).Str("user_id", user.ID).Msg("book created")

	s.notifier.notify(ctx, s.notifier.bookEvent(models.BookCreated, book, user))

	return book, nil
}

// DeleteBook removes a book owned by user together with its images. The
// notification and the blob cleanup run after the rows are gone and never
// fail the call.
func (s *bookService) DeleteBook(ctx context.Context, user models.User, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := s.findBook(ctx, id)
	if err != nil {
		return models.Book{}, err
	}
	if book.UserID != user.ID {
		log.Warn().Str("book_id", id).Str("user_id", user.ID).Msg("book delete by non-owner rejected")
		return models.Book{}, ErrNotOwner
	}

	if err = s.bookRepository.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return models.Book{}, ErrBookNotFound
		}
		return models.Book{}, fmt.Errorf("book deletion ended with error: %w", err)
	}

	s.notifier.notify(ctx, s.notifier.bookEvent(models.BookDeleted, book, user))

	prefix := models.BookObjectPrefix(id)
	if removed, blobErr := s.blobStorage.DeletePrefix(ctx, prefix); blobErr != nil {
		log.Error().Err(blobErr).
			Bool("reconcile", true).
			Str("prefix", prefix).
			Int("removed", removed).
			Msg("book blobs were not deleted")
	}

	return book, nil
}

func (s *bookService) findBook(ctx context.Context, id string) (models.Book, error) {
	book, err := s.bookRepository.FindBookByID(ctx, id)
	if errors.Is(err, store.ErrBookNotFound) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("error finding book: %w", err)
	}

	return book, nil
}
