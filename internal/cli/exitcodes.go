package cli

import (
	"errors"
	"os"

	"github.com/inkwell-md/inkwell/pkg/scan"
)

// Exit codes for inkwell.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitBuildError indicates a post failed to render or the build failed.
	ExitBuildError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error returned by command execution to a
// process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrBuildFailed) {
		return ExitBuildError
	}
	if _, ok := scan.AsError(err); ok {
		return ExitBuildError
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitIOError
	}
	return ExitInternalError
}
