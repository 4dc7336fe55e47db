// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// webapp HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe why a request failed. Keeping them in one
// place keeps the wording consistent throughout the API.
package app

const (
	// MsgMissingUserFields is returned when a registration payload lacks one
	// of username, password, first_name or last_name.
	MsgMissingUserFields = "Please enter username, password, first_name and last_name"

	// MsgUsernameExists is returned when the requested username is taken.
	MsgUsernameExists = "Username exists. Please use a different username"

	// MsgWeakPassword is returned when a password fails the password policy.
	MsgWeakPassword = "Please enter a strong password. Follow NIST guidelines"

	// MsgImmutableUsername is returned when a self update carries a username.
	MsgImmutableUsername = "Cannot modify username. Please supply first_name, last_name or password"

	MsgMissingBookFields = "Please enter title, author, isbn and published_date"

	// MsgInvalidDataProvided is returned when the decoded request is
	// structurally wrong in a way no more specific message describes.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgUnauthorized is returned with every 401 caused by missing or
	// wrong credentials.
	MsgUnauthorized = "Unauthorized Access"

	// MsgNotOwner is returned when the caller is authenticated but does not
	// own the book or image being deleted.
	MsgNotOwner = "You are not the owner of this resource"

	MsgBookNotFound  = "Book not found"
	MsgImageNotFound = "Image not found"

	MsgMissingFile         = "Please attach a file in the `file` field"
	MsgUnsupportedFileType = "Only png, jpg, jpeg and gif images are supported"
	MsgFileTooLarge        = "Uploaded file is too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
