package texmark

//go:generate stringer -type=MarkKind -trimprefix=Mark

// MarkKind classifies a structural region of LaTeX source. This is a closed
// set: consumers switch exhaustively over it, so new kinds are never added
// without a corresponding spec change.
type MarkKind uint8

const (
	MarkTitle MarkKind = iota
	MarkSection
	MarkSectionStar
	MarkSubsection
	MarkSubsectionStar
	MarkSubsubsection
	MarkSubsubsectionStar
	MarkChapter
	MarkChapterStar
	MarkTextbf
	MarkTextit
	MarkCaption
	MarkLabel
	MarkRef
	MarkInput
	MarkInclude
	MarkIncludeGraphics
	MarkIncludeGraphicsOptional
	MarkInlineMath
	MarkDisplayMath
	MarkOuterDisplayMath
	MarkAbstract
	MarkFigure
	MarkItemize
	MarkEnumerate
	MarkItem
	MarkEnumerateItem
	MarkMaketitle
	MarkCite
	MarkCiteP
	MarkCiteT
	MarkFootcite
	MarkNocite
	MarkAutocite
	MarkAutocites
	MarkCiteauthor
	MarkCiteyear
	MarkParencite
	MarkCitealt
	MarkTextcite
	MarkCref
	MarkCrefCapital
	MarkListing
)

// name returns the external string form of a mark kind (e.g. "section*",
// "enumerate-item").
func (k MarkKind) name() string {
	switch k {
	case MarkTitle:
		return "title"
	case MarkSection:
		return "section"
	case MarkSectionStar:
		return "section*"
	case MarkSubsection:
		return "subsection"
	case MarkSubsectionStar:
		return "subsection*"
	case MarkSubsubsection:
		return "subsubsection"
	case MarkSubsubsectionStar:
		return "subsubsection*"
	case MarkChapter:
		return "chapter"
	case MarkChapterStar:
		return "chapter*"
	case MarkTextbf:
		return "textbf"
	case MarkTextit:
		return "textit"
	case MarkCaption:
		return "caption"
	case MarkLabel:
		return "label"
	case MarkRef:
		return "ref"
	case MarkInput:
		return "input"
	case MarkInclude:
		return "include"
	case MarkIncludeGraphics:
		return "includegraphics"
	case MarkIncludeGraphicsOptional:
		return "includegraphics-optional"
	case MarkInlineMath:
		return "inline-math"
	case MarkDisplayMath:
		return "display-math"
	case MarkOuterDisplayMath:
		return "outer-display-math"
	case MarkAbstract:
		return "abstract"
	case MarkFigure:
		return "figure"
	case MarkItemize:
		return "itemize"
	case MarkEnumerate:
		return "enumerate"
	case MarkItem:
		return "item"
	case MarkEnumerateItem:
		return "enumerate-item"
	case MarkMaketitle:
		return "maketitle"
	case MarkCite:
		return "cite"
	case MarkCiteP:
		return "citep"
	case MarkCiteT:
		return "citet"
	case MarkFootcite:
		return "footcite"
	case MarkNocite:
		return "nocite"
	case MarkAutocite:
		return "autocite"
	case MarkAutocites:
		return "autocites"
	case MarkCiteauthor:
		return "citeauthor"
	case MarkCiteyear:
		return "citeyear"
	case MarkParencite:
		return "parencite"
	case MarkCitealt:
		return "citealt"
	case MarkTextcite:
		return "textcite"
	case MarkCref:
		return "cref"
	case MarkCrefCapital:
		return "Cref"
	case MarkListing:
		return "listing"
	default:
		return "unknown"
	}
}

func (k MarkKind) String() string { return k.name() }

// AllKinds returns every recognized MarkKind in declaration order, for
// commands that enumerate the closed vocabulary rather than tokenizing
// source.
func AllKinds() []MarkKind {
	return []MarkKind{
		MarkTitle, MarkSection, MarkSectionStar, MarkSubsection, MarkSubsectionStar,
		MarkSubsubsection, MarkSubsubsectionStar, MarkChapter, MarkChapterStar,
		MarkTextbf, MarkTextit, MarkCaption, MarkLabel, MarkRef, MarkInput,
		MarkInclude, MarkIncludeGraphics, MarkIncludeGraphicsOptional,
		MarkInlineMath, MarkDisplayMath, MarkOuterDisplayMath, MarkAbstract,
		MarkFigure, MarkItemize, MarkEnumerate, MarkItem, MarkEnumerateItem,
		MarkMaketitle, MarkCite, MarkCiteP, MarkCiteT, MarkFootcite, MarkNocite,
		MarkAutocite, MarkAutocites, MarkCiteauthor, MarkCiteyear, MarkParencite,
		MarkCitealt, MarkTextcite, MarkCref, MarkCrefCapital,
		MarkListing,
	}
}

// CheckedProperties is the auxiliary bag of fields consumers read off a
// closed mark beyond its bare range, mirroring spec.md's "checked
// properties" grab-bag (kind duplicate, list numbering, nesting depth,
// line span).
type CheckedProperties struct {
	Kind           MarkKind
	Number         int // 1-based enumeration index; 0 when not applicable
	OpenMarksCount int // open-mark stack depth recorded at open (items) or close
	FromLine       int
	ToLine         int

	// Language is the guessed source language of a MarkListing body (a
	// verbatim/lstlisting/minted environment). It is never populated by the
	// tokenizer itself, which never inspects a mark's content text; a host
	// that captures the raw lines between ContentFrom and ContentTo fills it
	// in afterward (see pkg/langdetect and pkg/batch).
	Language string
}

// Mark is an immutable, closed structural region of LaTeX source. Once
// appended to State.Marks it is never mutated.
type Mark struct {
	Kind        MarkKind
	From        Position
	ContentFrom Position
	ContentTo   Position
	To          Position

	// OpenParentID is the id of the innermost mark that was still open when
	// this mark was opened, or -1 if none. IDs are stable across state
	// clones (see openMark in state.go); they are never raw pointers, so a
	// shallow-copied State remains a valid, independently walkable snapshot.
	OpenParentID int

	CheckedProperties CheckedProperties
}

// openMark is a mark that has been opened but not yet closed or abandoned.
// It lives on State.openMarks, innermost on top.
type openMark struct {
	id             int
	kind           MarkKind
	from           Position
	contentFrom    Position
	parentID       int // -1 if none
	openMarksDepth int // len(openMarks) at the moment this mark was opened, before pushing itself
	number         int // 1-based list-item enumeration index; 0 when not applicable
}
