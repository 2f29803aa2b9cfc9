package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Every declared artifact exists
	ExitValidationFailed = 1 // One or more artifacts are missing
	ExitError            = 2 // Configuration or runtime error
)

// ValidationFailedError indicates that the run completed successfully,
// but one or more declared artifacts are missing from disk.
type ValidationFailedError struct {
	Missing int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d artifact(s) missing", e.Missing)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var validationErr *ValidationFailedError
		if errors.As(err, &validationErr) {
			os.Exit(ExitValidationFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
