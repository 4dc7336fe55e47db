package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] over the "books" table.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookQuery(book)
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error inserting book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return book, nil
}

// ListBooks returns every book ordered by creation time. An empty table
// yields an empty, non-nil slice.
func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var books []models.Book
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		books = make([]models.Book, 0)
		for rows.Next() {
			book, scanErr := scanBook(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			books = append(books, book)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error listing books")
		return nil, err
	}

	return books, nil
}

func (r *bookRepository) FindBookByID(ctx context.Context, id string) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookByIDQuery(id)
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		book, scanErr = scanBook(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error scanning book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// DeleteBook removes the book and all of its image rows in one transaction.
func (r *bookRepository) DeleteBook(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleteImages, imageArgs, err := buildDeleteImagesByBookQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteBook, bookArgs, err := buildDeleteBookQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteImages, imageArgs...); err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book images")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteBook, bookArgs...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	log.Info().Str("func", "*bookRepository.DeleteBook").Str("book_id", id).Msg("book deleted")

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var book models.Book
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.PublishedDate,
		&book.BookCreated,
		&book.UserID,
	)
	return book, err
}
