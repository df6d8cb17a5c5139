// Package batch provides multi-file tokenization orchestration: discovering
// .tex files under one or more paths and running pkg/texmark over each
// concurrently, the way a CI check or a "tokenize this whole project" CLI
// command would.
package batch

import "github.com/yaklabco/latexmark/pkg/texmark"

// Options controls multi-file tokenization behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered LaTeX source. Defaults to [".tex"] via DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// EnvExtensions widens the tokenizer's environment table for every file
	// processed by this run, per .texmarkrc.yaml's config-driven extension
	// feature.
	EnvExtensions []texmark.EnvExtension
}

// DefaultExtensions returns the default set of LaTeX source file extensions.
func DefaultExtensions() []string {
	return []string{".tex"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
