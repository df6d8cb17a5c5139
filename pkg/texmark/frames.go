package texmark

import "regexp"

// frameKind is the tagged-variant discriminator for the pushdown stack.
// Rather than closures capturing shared state (the source's approach, per
// spec.md's design notes), each stack entry is a small value-typed record
// dispatched through a switch, which keeps State trivially copyable.
type frameKind uint8

const (
	frameTopLevel frameKind = iota
	frameEnv
	frameArgGroup
	frameSequence
	frameVerb
	frameEndDocTrailer
	frameCompound
)

// contentKind selects which content function an environment or argument
// frame delegates to once its own blank-line/closing checks have passed.
type contentKind uint8

const (
	ctText contentKind = iota
	ctMath
	ctVerbatim // consume as StyleString
	ctComment  // consume as StyleComment
	ctTikz
	ctItem
	ctFigure
)

// envDescriptor is a static descriptor for a recognized environment.
type envDescriptor struct {
	name              string
	markKind          MarkKind
	hasMark           bool
	allowBlankLines   bool
	matchOnSingleLine bool
	content           contentKind

	// endRe matches this environment's own `\end{name}` literally anywhere
	// in the remainder of a line. Raw content kinds (ctVerbatim, ctComment)
	// would otherwise blindly consume past an `\end{name}` appearing after
	// other text on the same line, since they never stop at a backslash the
	// way tokText/tokMath do.
	endRe *regexp.Regexp
}

// envFrame is the live environment-body sub-tokenizer instance, pushed
// after a `\begin{name}` sequence has been fully consumed.
type envFrame struct {
	desc      *envDescriptor
	markID    int // -1 if this environment is not marked
	beginLine int // line on which `\begin{name}` started
}

// argFrame is the "scoped bracketed region" combinator: required `{…}`,
// optional `[…]`, inline/display math zones, and brace groups are all
// instances of this one shape.
type argFrame struct {
	closeLiteral string // "}" "]" "$" "$$" "\\)" "\\]"
	closeStyle   Style
	content      contentKind
	marked       bool

	// abandonLiteral, when set, is checked before closeLiteral on every call.
	// Matching it pops this frame without consuming input or emitting a
	// style, leaving the literal for whatever frame is now on top to retry
	// at the same position. Inline math uses this so a second bare `$`
	// abandons the inline-math reading and retries as display math.
	abandonLiteral string
}

// seqStep is one pattern/style pair in a sequence combinator run.
type seqStep struct {
	literal string
	style   Style
}

// seqFrame drives a multi-call literal sequence (e.g. the four calls needed
// to consume `\begin` `{` name `}`), emitting one style per call and running
// a callback once the last step lands.
type seqFrame struct {
	steps []seqStep
	idx   int

	// then is invoked once the final step has been consumed. It receives the
	// captured dynamic text (e.g. the environment name, looked ahead before
	// the sequence was pushed) and the stream position immediately after the
	// last step, and returns the state to continue from (with this frame
	// already popped).
	then func(state State, name string, after Position) State
	name string
}

// verbFrame drives `\verb*DELIMbodyDELIM`, which may span into following
// lines if the closing delimiter is never found.
type verbFrame struct {
	delim byte
}

// compoundFrame drives `\title`/`\author`: an optional bracketed argument
// followed by a required braced argument, both scanned as plain content,
// with (for kinds that have one) a single mark spanning the whole
// construct whose content range is the required argument only.
type compoundFrame struct {
	kind    MarkKind
	hasMark bool
	from    Position
	phase   int // 0=await [ or {, 1=in optional, 2=await required {, 3=in required
}

// frame is the tagged-union stack entry. Only the field(s) matching kind are
// meaningful for a given instance.
type frame struct {
	kind frameKind

	env      *envFrame
	arg      *argFrame
	seq      *seqFrame
	verb     *verbFrame
	compound *compoundFrame
}
