package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/erraggy/oas2ir"
	"github.com/erraggy/oas2ir/internal/cliutil"
	"github.com/erraggy/oas2ir/ir"
	"github.com/erraggy/oas2ir/parser"
	"github.com/spf13/pflag"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Environment variables consulted when the matching flag is not set.
const (
	EnvLogLevel    = "OAS2IR_LOG_LEVEL"
	EnvMaxFileSize = "OAS2IR_MAX_FILE_SIZE"
	EnvIndent      = "OAS2IR_INDENT"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return newUsageError(fmt.Sprintf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML))
	}
	return nil
}

// MarshalIR encodes the service in format. An indent of 0 gives compact
// JSON; YAML is always block style and uses at least two spaces.
func MarshalIR(svc *ir.Service, format string, indent int) ([]byte, error) {
	var data []byte
	var err error
	if indent > 0 && format == FormatJSON {
		data, err = json.MarshalIndent(svc, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(svc)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling to json: %w", err)
	}
	if format == FormatJSON {
		return data, nil
	}
	return jsonToYAML(data, max(indent, 2))
}

// jsonToYAML re-encodes JSON as block-style YAML. Going through a node tree
// keeps the key order of the JSON encoding.
func jsonToYAML(data []byte, indent int) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("marshaling to yaml: %w", err)
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("marshaling to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling to yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// blockStyle clears the flow and quoting styles the JSON input left on n.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		slog.Warn("output file already exists and will be overwritten", "path", outputPath)
	}

	return nil
}

// FormatSpecPath returns a display-friendly path for the input document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputSummary writes the conversion header and statistics to w.
func OutputSummary(w io.Writer, specPath string, result *parser.Result) {
	svc := result.Service
	methods := 0
	for _, iface := range svc.Interfaces {
		methods += len(iface.Methods)
	}
	cliutil.Writef(w, "oas2ir version: %s\n", oas2ir.Version())
	cliutil.Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(w, "Service: %s v%d\n", svc.Title.Value, svc.MajorVersion.Value)
	cliutil.Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	cliutil.Writef(w, "Interfaces: %d\n", len(svc.Interfaces))
	cliutil.Writef(w, "Methods: %d\n", methods)
	cliutil.Writef(w, "Types: %d\n", len(svc.Types))
	cliutil.Writef(w, "Enums: %d\n", len(svc.Enums))
	cliutil.Writef(w, "Violations: %d\n", len(result.Violations))
	cliutil.Writef(w, "Load Time: %v\n", result.LoadTime)
	cliutil.Writef(w, "Convert Time: %v\n", result.ConvertTime)
}

// resolveLogLevel picks the --log-level flag, then OAS2IR_LOG_LEVEL, then warn.
func resolveLogLevel(flags *pflag.FlagSet, flagValue string) (slog.Level, error) {
	if flags.Changed("log-level") {
		level, err := parseLevel(flagValue)
		if err != nil {
			return 0, newUsageError(err.Error())
		}
		return level, nil
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := parseLevel(v)
		if err == nil {
			return level, nil
		}
		slog.Warn("invalid log level env var, using default", "key", EnvLogLevel, "value", v, "default", "warn") //nolint:gosec // G706: values are structured log fields, not format strings
	}
	return slog.LevelWarn, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
	return level, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
