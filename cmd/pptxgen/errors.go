package main

import (
	"errors"
	"fmt"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// Process exit codes
const (
	exitOK         = 0
	exitUsage      = 1
	exitValidation = 2
	exitNotFound   = 3
	exitFormat     = 4
	exitIO         = 5
)

// usageError reports a command line that cannot be run as given
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exitCode maps an error onto a process exit code. Errors outside the
// taxonomy exit as usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	switch entities.KindOf(err) {
	case entities.ErrorKindValidation:
		return exitValidation
	case entities.ErrorKindNotFound:
		return exitNotFound
	case entities.ErrorKindFormat:
		return exitFormat
	case entities.ErrorKindIO:
		return exitIO
	default:
		return exitUsage
	}
}

// describeError renders err for stderr, prefixed so users can tell
// outline mistakes from environment failures
func describeError(err error) string {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return fmt.Sprintf("%s (see --help)", uerr.msg)
	}

	if entities.IsKind(err, entities.ErrorKindValidation) {
		return fmt.Sprintf("%s: %v", entities.ErrorKindValidation, err)
	}

	return err.Error()
}
