// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport level request errors. They are mapped to responses together with
// the service sentinels in errors_mapper.go.
var (
	// ErrMissingBasicAuth is logged when a protected route is called without
	// an "Authorization: Basic ..." header.
	ErrMissingBasicAuth = errors.New("missing basic `Authorization` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrFileTooLarge is returned when an upload exceeds the configured
	// request body limit.
	ErrFileTooLarge = errors.New("uploaded file is too large")

	// ErrMissingBookFields narrows a missing field error to the book payload.
	ErrMissingBookFields = errors.New("missing book fields")
)
