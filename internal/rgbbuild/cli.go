package rgbbuild

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rgbsdk/internal/platform"
	"rgbsdk/internal/provision"
	"rgbsdk/internal/staging"
)

// Exit codes reported by the CLI. Scripts key off these, keep them stable.
const (
	exitOK           = 0
	exitError        = 1
	exitUsage        = 2
	exitMissingDep   = 3
	exitBuildFailure = 4
	exitStagingIO    = 5
	exitUnsupported  = 6
)

var errCommandRequired = errors.New("a command is required: provision|resolve|check|platforms")

// usageError marks errors caused by how the tool was invoked rather than by
// what it attempted to do.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCode maps an error to the exit code contract above.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		return exitUsage
	case provision.IsMissingDependency(err):
		return exitMissingDep
	case provision.IsExternalBuildFailure(err):
		return exitBuildFailure
	case staging.IsIOError(err):
		return exitStagingIO
	case platform.IsUnsupported(err):
		return exitUnsupported
	default:
		return exitError
	}
}

// MainWithArgs runs the CLI with the given args and returns its exit code.
func MainWithArgs(ctx context.Context, args []string) int {
	if args == nil {
		// nil would make cobra fall back to os.Args
		args = []string{}
	}
	a := &app{}
	root := buildRootCmd(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if !a.invoked {
			// Cobra rejected the invocation before any command ran.
			return exitUsage
		}
		return exitCode(err)
	}
	return exitOK
}

// Main is the process entry point used by cmd/rgbbuild.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return MainWithArgs(ctx, os.Args[1:])
}
