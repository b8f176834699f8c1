// Package options provides shared helpers for validating functional options.
package options

import "github.com/erraggy/oas2ir/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a list of flags, one per input kind, telling whether it is set.
// The returned error is a *oaserrors.ConfigError for option, carrying
// noSourceMsg or multiSourceMsg.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &oaserrors.ConfigError{Option: option, Message: noSourceMsg}
	case sourceCount > 1:
		return &oaserrors.ConfigError{Option: option, Value: sourceCount, Message: multiSourceMsg}
	}
	return nil
}
