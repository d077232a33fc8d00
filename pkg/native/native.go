// Package native binds the platform credential store and presence check.
// On Windows that is the Credential Manager plus Windows Hello; everywhere
// else the OS keyring, with no presence verifier available.
package native

import "errors"

var (
	// ErrNotFound means no credential exists under the requested key.
	ErrNotFound = errors.New("secret not found")

	// ErrVerifyUnavailable means this platform has no presence check.
	ErrVerifyUnavailable = errors.New("presence verification is not available on this device")
)
