// Package imgerr defines the error kinds shared across the pixkit core.
// Callers match them with errors.Is; everything else is wrapped context.
package imgerr

import "errors"

var (
	// ErrInvalidParameter reports an out-of-domain scalar (negative
	// factor, alpha or intensity outside [0,1], quality outside [1,100]).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound reports a source path that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrDecode reports bytes that exist but cannot be parsed as an image.
	ErrDecode = errors.New("decode error")

	// ErrIO reports a destination that cannot be written.
	ErrIO = errors.New("i/o error")

	// ErrNoValidImages reports a batch encode that produced zero usable
	// entries. Partial success (some files skipped) is not an error.
	ErrNoValidImages = errors.New("no valid images")

	// ErrFrameProcessing wraps the first failing frame of an animated
	// sequence. The sequence is aborted; no partial frame list is returned.
	ErrFrameProcessing = errors.New("frame processing failed")

	// ErrAssetNotFound reports an asset missing from both the requested
	// theme and the default fallback theme.
	ErrAssetNotFound = errors.New("asset not found")
)
