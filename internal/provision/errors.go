package provision

import (
	"errors"
	"fmt"

	"rgbsdk/internal/platform"
)

// MissingDependencyError signals that the external librgb project the build
// depends on is absent. Fatal and not retried; the fix is operator action
// (clone or point --project at the checkout).
type MissingDependencyError struct {
	Path string // the path that was expected to exist
	What string // short description of the missing piece
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing dependency: %s not found at %s", e.What, e.Path)
}

// IsMissingDependency reports whether err indicates the external project is
// absent.
func IsMissingDependency(err error) bool {
	var me *MissingDependencyError
	return errors.As(err, &me)
}

// ExternalBuildFailureError signals that the external cargo build reported
// failure, or exited cleanly without producing the contracted artifacts. The
// underlying diagnostic is carried verbatim; the build's own output has
// already been streamed to the log.
type ExternalBuildFailureError struct {
	Platform platform.Key
	ExitCode int // exit status of the build process; -1 if it never ran to completion
	Err      error
}

func (e *ExternalBuildFailureError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("external build failed for %s (exit %d): %v", e.Platform, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("external build failed for %s: %v", e.Platform, e.Err)
}

func (e *ExternalBuildFailureError) Unwrap() error { return e.Err }

// IsExternalBuildFailure reports whether err indicates a failed external
// build.
func IsExternalBuildFailure(err error) bool {
	var be *ExternalBuildFailureError
	return errors.As(err, &be)
}
