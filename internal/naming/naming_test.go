package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		// Separators
		{name: "snake_case simple", input: "user_profile", want: "UserProfile"},
		{name: "leading underscore", input: "_private", want: "Private"},
		{name: "kebab-case", input: "api-client", want: "ApiClient"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "path-like", input: "/api/v1/users", want: "ApiV1Users"},
		{name: "spaces", input: "Swagger Petstore", want: "SwaggerPetstore"},
		{name: "punctuation", input: "Pet Store (v2)", want: "PetStoreV2"},

		// Already cased
		{name: "already PascalCase", input: "UserProfile", want: "UserProfile"},
		{name: "all caps", input: "API", want: "API"},
		{name: "camelCase", input: "userProfile", want: "UserProfile"},

		// Unicode
		{name: "accented first letter", input: "école publique", want: "ÉcolePublique"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "operation response", input: "getPets_response", want: "getPetsResponse"},
		{name: "empty parent", input: "_status", want: "status"},
		{name: "pascal input", input: "Pet_tag", want: "petTag"},
		{name: "separators only", input: "__", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.input))
		})
	}
}

func TestSingular(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"pets", "pet"},
		{"pet", "pet"},
		{"categories", "category"},
		{"users", "user"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Singular(tt.input))
		})
	}
}
