package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"applicants.xlsx", "applicants_scored.xlsx"},
		{"data/2026 신입생.xlsx", "data/2026 신입생_scored.xlsx"},
		{"noext", "noext_scored.xlsx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, defaultOutputPath(tt.input))
	}
}
