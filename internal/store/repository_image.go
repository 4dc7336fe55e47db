package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

type imageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewImageRepository constructs an [ImageRepository] over the "images" table.
func NewImageRepository(db *DB, logger *logger.Logger) ImageRepository {
	logger.Debug().Msg("creating image repository")
	return &imageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *imageRepository) CreateImage(ctx context.Context, image models.Image) (models.Image, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertImageQuery(image)
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*imageRepository.CreateImage").Msg("error inserting image")
		return models.Image{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return image, nil
}

func (r *imageRepository) ListImagesByBook(ctx context.Context, bookID string) ([]models.Image, error) {
	query, args, err := buildSelectImagesByBookQuery(bookID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var images []models.Image
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		images = make([]models.Image, 0)
		for rows.Next() {
			image, scanErr := scanImage(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			images = append(images, image)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageRepository.ListImagesByBook").Msg("error listing images")
		return nil, err
	}

	return images, nil
}

func (r *imageRepository) FindImageByID(ctx context.Context, fileID string) (models.Image, error) {
	query, args, err := buildSelectImageByIDQuery(fileID)
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var image models.Image
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		image, scanErr = scanImage(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Image{}, ErrImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageRepository.FindImageByID").Msg("error scanning image")
		return models.Image{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return image, nil
}

func (r *imageRepository) DeleteImage(ctx context.Context, fileID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteImageQuery(fileID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.DeleteImage").Msg("error deleting image")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}

// ListObjectNames returns the object key of every stored image.
func (r *imageRepository) ListObjectNames(ctx context.Context) ([]string, error) {
	query, args, err := buildSelectObjectNamesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var names []string
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		names = make([]string, 0)
		for rows.Next() {
			var name string
			if scanErr := rows.Scan(&name); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			names = append(names, name)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageRepository.ListObjectNames").Msg("error listing object names")
		return nil, err
	}

	return names, nil
}

func scanImage(row rowScanner) (models.Image, error) {
	var image models.Image
	err := row.Scan(
		&image.FileID,
		&image.FileName,
		&image.CreatedDate,
		&image.S3ObjectName,
		&image.UserID,
		&image.BookID,
	)
	return image, err
}
