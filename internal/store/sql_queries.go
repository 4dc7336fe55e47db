// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/shahparag-spring2021/webapp/models"
)

// psql uses $N placeholders, which both pgx and go-sqlite3 accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns  = []string{"id", "username", "password_hash", "first_name", "last_name", "account_created", "account_updated"}
	bookColumns  = []string{"id", "title", "author", "isbn", "published_date", "book_created", "user_id"}
	imageColumns = []string{"file_id", "file_name", "created_date", "s3_object_name", "user_id", "book_id"}
)

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.PasswordHash, user.FirstName, user.LastName, user.AccountCreated, user.AccountUpdated).
		ToSql()
}

func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update("users").
		Set("password_hash", user.PasswordHash).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("account_updated", user.AccountUpdated).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func buildInsertBookQuery(book models.Book) (string, []any, error) {
	return psql.Insert("books").
		Columns(bookColumns...).
		Values(book.ID, book.Title, book.Author, book.ISBN, book.PublishedDate, book.BookCreated, book.UserID).
		ToSql()
}

func buildSelectBooksQuery() (string, []any, error) {
	return psql.Select(bookColumns...).
		From("books").
		OrderBy("book_created", "id").
		ToSql()
}

func buildSelectBookByIDQuery(id string) (string, []any, error) {
	return psql.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteBookQuery(id string) (string, []any, error) {
	return psql.Delete("books").Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteImagesByBookQuery(bookID string) (string, []any, error) {
	return psql.Delete("images").Where(sq.Eq{"book_id": bookID}).ToSql()
}

func buildInsertImageQuery(image models.Image) (string, []any, error) {
	return psql.Insert("images").
		Columns(imageColumns...).
		Values(image.FileID, image.FileName, image.CreatedDate, image.S3ObjectName, image.UserID, image.BookID).
		ToSql()
}

func buildSelectImagesByBookQuery(bookID string) (string, []any, error) {
	return psql.Select(imageColumns...).
		From("images").
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("created_date", "file_id").
		ToSql()
}

func buildSelectImageByIDQuery(fileID string) (string, []any, error) {
	return psql.Select(imageColumns...).
		From("images").
		Where(sq.Eq{"file_id": fileID}).
		ToSql()
}

func buildDeleteImageQuery(fileID string) (string, []any, error) {
	return psql.Delete("images").Where(sq.Eq{"file_id": fileID}).ToSql()
}

func buildSelectObjectNamesQuery() (string, []any, error) {
	return psql.Select("s3_object_name").From("images").ToSql()
}
