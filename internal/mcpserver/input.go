package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/oas2ir/parser"
)

// specInput is the document a tool call converts. Exactly one of File or
// Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI 2.0 file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI 2.0 document content (JSON or YAML)"`
}

var errInputSource = errors.New("exactly one of file or content must be provided")

// cacheKey identifies the input for the result cache and picks its TTL.
// A file is keyed by absolute path and modification time so an edited file
// is converted again. Inline content is keyed by its SHA-256. An empty key
// means the input is not cacheable.
func (s specInput) cacheKey() (string, time.Duration) {
	if s.Content != "" {
		sum := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(sum[:]), cfg.CacheContentTTL
	}
	if s.File == "" {
		return "", 0
	}
	abs, err := filepath.Abs(s.File)
	if err != nil {
		return "", 0
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", 0
	}
	return fmt.Sprintf("file:%s@%d", abs, info.ModTime().UnixNano()), cfg.CacheFileTTL
}

// resolve converts the document, serving repeated inputs from the cache.
// Failed conversions are never cached.
func (s specInput) resolve() (*parser.Result, error) {
	if (s.File == "") == (s.Content == "") {
		return nil, errInputSource
	}
	if size := int64(len(s.Content)); size > cfg.MaxInputSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set OAS2IR_MCP_MAX_INPUT_SIZE to increase",
			size, cfg.MaxInputSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	if key != "" {
		if hit := results.lookup(key); hit != nil {
			slog.Debug("convert cache hit", "key", key)
			return hit, nil
		}
	}

	source := parser.WithFilePath(s.File)
	if s.Content != "" {
		source = parser.WithReader(strings.NewReader(s.Content))
	}
	result, err := parser.ParseWithOptions(
		source,
		parser.WithLogger(parser.NewSlogAdapter(slog.Default())),
		parser.WithMaxFileSize(cfg.MaxInputSize),
	)
	if err != nil {
		return nil, err
	}
	if key != "" {
		results.store(key, result, ttl)
	}
	return result, nil
}
