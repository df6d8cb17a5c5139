package texmark

import "regexp"

// Precompiled lookahead/match patterns. Compiling once at package init keeps
// the hot per-character dispatch path allocation-free.
var (
	reCommandName = regexp.MustCompile(`^[A-Za-z]+\*?`)
	reNumber      = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?`)
)

// envDescriptors maps an environment name (as it appears in
// \begin{name}) to its descriptor. Built once; never mutated after init.
var envDescriptors = buildEnvDescriptors()

func buildEnvDescriptors() map[string]*envDescriptor {
	m := make(map[string]*envDescriptor)
	add := func(d envDescriptor) {
		cp := d
		cp.endRe = buildEndRe(d.name)
		m[d.name] = &cp
	}

	add(envDescriptor{name: "document", hasMark: false, allowBlankLines: true, content: ctText})
	add(envDescriptor{name: "abstract", markKind: MarkAbstract, hasMark: true, allowBlankLines: true, content: ctText})
	add(envDescriptor{name: "itemize", markKind: MarkItemize, hasMark: true, allowBlankLines: true, content: ctItem})
	add(envDescriptor{name: "enumerate", markKind: MarkEnumerate, hasMark: true, allowBlankLines: true, content: ctItem})
	add(envDescriptor{name: "figure", markKind: MarkFigure, hasMark: true, allowBlankLines: true, content: ctFigure})
	add(envDescriptor{name: "figure*", markKind: MarkFigure, hasMark: true, allowBlankLines: true, content: ctFigure})

	for _, name := range []string{"equation", "equation*", "align", "align*", "gather", "gather*", "multline", "multline*"} {
		add(envDescriptor{name: name, hasMark: false, allowBlankLines: false, content: ctMath})
	}

	add(envDescriptor{name: "tikzpicture", hasMark: false, allowBlankLines: true, content: ctTikz})
	add(envDescriptor{name: "comment", hasMark: false, allowBlankLines: true, content: ctComment})

	for _, name := range []string{"verbatim", "lstlisting", "minted"} {
		add(envDescriptor{name: name, markKind: MarkListing, hasMark: true, allowBlankLines: true, matchOnSingleLine: true, content: ctVerbatim})
	}

	return m
}

// buildEndRe compiles the `\end{name}` matcher for a single environment
// name, used both for the built-in table and for unrecognized/extension
// names resolved at runtime.
func buildEndRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`\\end\{` + regexp.QuoteMeta(name) + `\}`)
}

// sectioningCommands covers \section, \subsection, ..., each with a starred
// variant, all of which recurse into text for their argument body.
var sectioningCommands = map[string]MarkKind{
	"section":        MarkSection,
	"section*":       MarkSectionStar,
	"subsection":     MarkSubsection,
	"subsection*":    MarkSubsectionStar,
	"subsubsection":  MarkSubsubsection,
	"subsubsection*": MarkSubsubsectionStar,
	"chapter":        MarkChapter,
	"chapter*":       MarkChapterStar,
}

// plainScanCommands recurse only as a flat character scan (no nested
// text/math tokenization) per spec.md's argument-content-mode split: these
// are references, paths, and citation keys, never prose.
var plainScanCommands = map[string]MarkKind{
	"label":      MarkLabel,
	"ref":        MarkRef,
	"input":      MarkInput,
	"include":    MarkInclude,
	"cite":       MarkCite,
	"citep":      MarkCiteP,
	"citet":      MarkCiteT,
	"footcite":   MarkFootcite,
	"nocite":     MarkNocite,
	"autocite":   MarkAutocite,
	"autocites":  MarkAutocites,
	"citeauthor": MarkCiteauthor,
	"citeyear":   MarkCiteyear,
	"parencite":  MarkParencite,
	"citealt":    MarkCitealt,
	"textcite":   MarkTextcite,
	"Cref":       MarkCrefCapital,
	"cref":       MarkCref,
}

// textRecursingCommands take a single required {…} argument whose body is
// itself tokenized as ordinary text (so nested \textbf, math, etc. inside a
// \section{...} or \caption{...} still produce their own marks).
var textRecursingCommands = map[string]MarkKind{
	"textbf":  MarkTextbf,
	"textit":  MarkTextit,
	"caption": MarkCaption,
}
