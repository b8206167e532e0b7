package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"", "", false},
		{"abc.def.ghi", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer", "", false},
		{"Bearer a b", "", false},
	}
	for _, tt := range tests {
		token, ok := ExtractBearer(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
