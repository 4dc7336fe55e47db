// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "all classes, minimum length", password: "Abcdef1!", want: true},
		{name: "maximum length", password: "Abcdefghijklmnopqrstuv1!", want: true},
		{name: "every allowed symbol", password: "Aa1@$!%*#?&", want: true},
		{name: "lowercase only", password: "abcdefgh", want: false},
		{name: "too short", password: "Ab1!", want: false},
		{name: "too long", password: strings.Repeat("A", 26) + "b1!", want: false},
		{name: "no uppercase", password: "abcdef1!", want: false},
		{name: "no lowercase", password: "ABCDEF1!", want: false},
		{name: "no digit", password: "Abcdefg!", want: false},
		{name: "no symbol", password: "Abcdefg1", want: false},
		{name: "disallowed symbol", password: "Abcdef1!^", want: false},
		{name: "whitespace", password: "Abc def1!", want: false},
		{name: "non ascii", password: "Abcdéf1!", want: false},
		{name: "empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}
