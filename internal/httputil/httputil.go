// Package httputil holds the HTTP verbs and status code rules used when
// reading OpenAPI 2.0 path items and responses.
package httputil

// HTTP method names as they appear in a Swagger path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// Status codes inferred for operations without an explicit 2xx response.
const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204
)

var methods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
}

// IsMethod reports whether key is one of the seven Swagger 2.0 operation
// verbs. Matching is case sensitive; "trace" is not a 2.0 verb.
func IsMethod(key string) bool {
	return methods[key]
}

// ParseStatusCode converts a responses key made only of ASCII digits to its
// integer value. "default", "2XX" and extension keys are not codes.
func ParseStatusCode(key string) (int, bool) {
	if key == "" || len(key) > 9 {
		return 0, false
	}
	code := 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		code = code*10 + int(c-'0')
	}
	return code, true
}

// DefaultSuccessCode is the status implied by a "default" response that
// carries a schema, chosen by verb.
func DefaultSuccessCode(verb string) int {
	switch verb {
	case MethodDelete:
		return StatusAccepted
	case MethodOptions:
		return StatusNoContent
	case MethodPost:
		return StatusCreated
	default:
		return StatusOK
	}
}
