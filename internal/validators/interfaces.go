// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests before they reach storage:
// struct tag rules for request models and the password strength policy.
package validators

import "context"

// Validator validates a request model. When field names are given, only
// failures on those fields are reported.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
