package models

import "io"

// CreateUserRequest is the body of POST /v1/user.
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,strong_password"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// UpdateUserRequest is the body of PUT /v1/user/self.
// A nil field was absent from the payload and is left untouched.
type UpdateUserRequest struct {
	// Username is decoded only to reject it: usernames are immutable.
	Username  *string `json:"username"`
	Password  *string `json:"password" validate:"omitnil,strong_password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// CreateBookRequest is the body of POST /books.
type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	ISBN          string `json:"isbn" validate:"required"`
	PublishedDate string `json:"published_date" validate:"required"`
}

// ImageUpload carries a single uploaded file from the transport layer to
// the image service. Content is owned by the caller and must be closed by it.
type ImageUpload struct {
	BookID      string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}
