package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"550E8400-E29B-41D4-A716-446655440000", true},
		{"550e8400e29b41d4a716446655440000", false},
		{"{550e8400-e29b-41d4-a716-446655440000}", false},
		{"urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"550e8400-e29b-41d4-a716-44665544000g", false},
		{"ENG", false},
		{"ABC-1", false},
		{"Done", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsID(tt.in), "IsID(%q)", tt.in)
	}
}
