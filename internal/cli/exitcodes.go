package cli

import "github.com/yaklabco/latexmark/pkg/batch"

// Exit codes for latexmark.
const (
	// ExitSuccess indicates every requested file was tokenized.
	ExitSuccess = 0

	// ExitFilesErrored indicates one or more files could not be read or
	// tokenized.
	ExitFilesErrored = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors outside of tokenizing a
	// discovered file (e.g. writing a config template).
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on a tokenize run's
// result. There are no severities in this domain - a file either tokenizes
// or it errors (could not be read) - so unlike a linter's strict mode,
// there is nothing to escalate.
func ExitCodeFromResult(result *batch.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitFilesErrored
	}

	return ExitSuccess
}
