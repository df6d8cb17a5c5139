package batch

// FileOutcome wraps FileResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the tokenize result for this file.
	// May be nil if the file encountered an error during processing.
	Result *FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully tokenized.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// MarksTotal is the total number of closed marks across all files.
	MarksTotal int

	// MaxStackDepth is the highest pushdown-stack depth observed across
	// every file in the run.
	MaxStackDepth int
}

// Result is the overall batch run result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasErrors reports whether any file failed to tokenize.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.MarksTotal += len(outcome.Result.Marks)
	if outcome.Result.MaxStackDepth > r.Stats.MaxStackDepth {
		r.Stats.MaxStackDepth = outcome.Result.MaxStackDepth
	}
}
