package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("resource belongs to another user")

	ErrMissingField   = errors.New("required field is missing")
	ErrWeakPassword   = errors.New("password does not satisfy the password policy")
	ErrImmutableField = errors.New("field cannot be modified")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUsernameTaken  = errors.New("username is already taken")

	ErrBookNotFound  = errors.New("book not found")
	ErrImageNotFound = errors.New("image not found")

	ErrMissingFile         = errors.New("no file provided")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
