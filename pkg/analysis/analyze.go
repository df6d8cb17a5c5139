package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/latexmark/pkg/batch"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	kindMap   map[string]*KindAnalysis
	fileMap   map[string]*FileAnalysis
	kindFiles map[string]map[string]bool
	fileKinds map[string]map[string]bool
}

// newAnalysisContext creates a new analysis context.
func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[string]*KindAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		kindFiles: make(map[string]map[string]bool),
		fileKinds: make(map[string]map[string]bool),
	}
}

// getOrCreateFileAnalysis returns existing or creates new FileAnalysis.
func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileKinds[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

// getOrCreateKindAnalysis returns existing or creates new KindAnalysis.
func (ctx *analysisContext) getOrCreateKindAnalysis(kind string) *KindAnalysis {
	if _, ok := ctx.kindMap[kind]; !ok {
		ctx.kindMap[kind] = &KindAnalysis{Kind: kind}
		ctx.kindFiles[kind] = make(map[string]bool)
	}
	return ctx.kindMap[kind]
}

// buildByKind constructs the ByKind slice from accumulated data.
func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from accumulated data.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Marks == 0 {
			continue
		}
		for k := range ctx.fileKinds[path] {
			fa.Kinds = append(fa.Kinds, k)
		}
		slices.Sort(fa.Kinds)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a batch.Result into a Report. It performs a single pass
// through each file's closed marks to compute all views.
func Analyze(result *batch.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, outcome := range result.Files {
		report.Totals.Files++
		if outcome.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if outcome.Result == nil {
			continue
		}

		if outcome.Result.MaxStackDepth > report.Totals.MaxStackDepth {
			report.Totals.MaxStackDepth = outcome.Result.MaxStackDepth
		}

		displayPath := makeRelativePath(outcome.Path, opts.WorkingDir)
		fa := ctx.getOrCreateFileAnalysis(displayPath)
		fa.MaxStackDepth = outcome.Result.MaxStackDepth

		for _, mark := range outcome.Result.Marks {
			report.Totals.MarksTotal++
			fa.Marks++

			kind := mark.Kind.String()
			ctx.fileKinds[displayPath][kind] = true

			ka := ctx.getOrCreateKindAnalysis(kind)
			ka.Count++
			ctx.kindFiles[kind][displayPath] = true
		}
	}

	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(kinds, func(left, right KindAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Kind, right.Kind)
		default: // SortByCount
			result := cmp.Compare(left.Count, right.Count)
			if desc {
				result = -result
			}
			return result
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		default: // SortByCount
			result := cmp.Compare(left.Marks, right.Marks)
			if desc {
				result = -result
			}
			return result
		}
	})
}
