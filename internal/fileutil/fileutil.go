// Package fileutil holds the file modes used when writing IR output.
package fileutil

import "os"

// OwnerReadWrite is the mode for IR files written by the CLI and the MCP
// convert tool. The IR embeds descriptions and extension values copied from
// the source document, so it is kept private to the owner.
const OwnerReadWrite os.FileMode = 0o600
