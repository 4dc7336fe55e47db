package models

import (
	"path"
	"time"
)

// Image is the metadata row of an uploaded book image. Each row corresponds
// to exactly one blob stored under S3ObjectName.
type Image struct {
	FileID       string    `json:"file_id"`
	FileName     string    `json:"file_name"`
	CreatedDate  time.Time `json:"created_date"`
	S3ObjectName string    `json:"s3_object_name"`
	UserID       string    `json:"user_id"`
	BookID       string    `json:"book_id"`
}

// TableName returns the name of the database table
// associated with the Image model.
func (i Image) TableName() string {
	return "images"
}

// ImageObjectName builds the object key an image blob is stored under:
// book_id/file_id/file_name.
func ImageObjectName(bookID, fileID, fileName string) string {
	return path.Join(bookID, fileID, fileName)
}

// ImageObjectPrefix returns the key prefix that covers every blob of a single image.
func ImageObjectPrefix(bookID, fileID string) string {
	return bookID + "/" + fileID + "/"
}

// BookObjectPrefix returns the key prefix that covers every image blob of a book.
func BookObjectPrefix(bookID string) string {
	return bookID + "/"
}
