package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMethod(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{"get", "get", true},
		{"put", "put", true},
		{"post", "post", true},
		{"delete", "delete", true},
		{"options", "options", true},
		{"head", "head", true},
		{"patch", "patch", true},
		{"trace is not a 2.0 verb", "trace", false},
		{"upper case", "GET", false},
		{"shared parameters", "parameters", false},
		{"extension", "x-get", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMethod(tt.key), "IsMethod(%q)", tt.key)
		})
	}
}

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		code   int
		wantOK bool
	}{
		{"ok", "200", 200, true},
		{"created", "201", 201, true},
		{"unusual but numeric", "299", 299, true},
		{"leading zero", "099", 99, true},
		{"default", "default", 0, false},
		{"wildcard", "2XX", 0, false},
		{"extension", "x-200", 0, false},
		{"signed", "+200", 0, false},
		{"empty", "", 0, false},
		{"too long", "2000000000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ParseStatusCode(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestDefaultSuccessCode(t *testing.T) {
	assert.Equal(t, StatusAccepted, DefaultSuccessCode(MethodDelete))
	assert.Equal(t, StatusNoContent, DefaultSuccessCode(MethodOptions))
	assert.Equal(t, StatusCreated, DefaultSuccessCode(MethodPost))
	assert.Equal(t, StatusOK, DefaultSuccessCode(MethodGet))
	assert.Equal(t, StatusOK, DefaultSuccessCode(MethodPut))
	assert.Equal(t, StatusOK, DefaultSuccessCode(MethodPatch))
	assert.Equal(t, StatusOK, DefaultSuccessCode(MethodHead))
}
