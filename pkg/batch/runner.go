package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/latexmark/pkg/texmark"
)

// Runner orchestrates multi-file tokenization using pkg/texmark directly.
// There is nothing to fix or write back, so a Runner here is just the
// environment-table extension every file in the run should share.
type Runner struct {
	EnvExtensions []texmark.EnvExtension
}

// New creates a new Runner with the given environment-table extensions.
func New(envExtensions []texmark.EnvExtension) *Runner {
	return &Runner{EnvExtensions: envExtensions}
}

// Run discovers files under opts.Paths and tokenizes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// opts.EnvExtensions are applied after (and so take precedence over) the
	// Runner's own extensions for this run.
	wr := r
	if len(opts.EnvExtensions) > 0 {
		merged := append(append([]texmark.EnvExtension(nil), r.EnvExtensions...), opts.EnvExtensions...)
		wr = &Runner{EnvExtensions: merged}
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wr.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker tokenizes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		fr, err := TokenizeFile(path, r.EnvExtensions)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = fr
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
