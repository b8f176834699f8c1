package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// SourceFormat is the serialization of the input document.
type SourceFormat string

const (
	SourceFormatYAML    SourceFormat = "yaml"
	SourceFormatJSON    SourceFormat = "json"
	SourceFormatUnknown SourceFormat = "unknown"
)

// detectFormat reports the format of data read from path. A .json, .yaml or
// .yml extension decides; otherwise input whose first non-blank byte opens an
// object or array is JSON and anything else is YAML.
func detectFormat(path string, data []byte) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	switch {
	case len(trimmed) == 0:
		return SourceFormatUnknown
	case trimmed[0] == '{' || trimmed[0] == '[':
		return SourceFormatJSON
	default:
		return SourceFormatYAML
	}
}

var byteUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// FormatBytes renders size with one decimal in binary units, or in plain
// bytes below 1 KiB.
func FormatBytes(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}
