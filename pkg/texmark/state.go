package texmark

// State is the opaque, immutable-at-line-boundaries tokenizer state a host
// editor saves after every line and may restart tokenization from. Every
// mutation produces a new State value; nothing here is ever mutated through
// a shared pointer, so a State the host copied out before further edits
// remains a valid, independent snapshot forever.
//
// Internally this is "a shallow copy of three sequences and a scalar" as
// spec.md's data model prescribes: stack, openMarks, and marks are always
// replaced wholesale (never grown in place with amortized append, which
// would risk two snapshots silently sharing - and corrupting - a backing
// array), so copying a State by value is always safe.
type State struct {
	stack      []frame
	line       int
	openMarks  []openMark
	marks      []Mark
	nextMarkID int

	// envTable is the environment-descriptor lookup table this state uses.
	// nil means "use the package-level built-in table alone". It is built
	// once by NewState and never mutated afterward, so sharing the map
	// pointer across every clone of this state is safe.
	envTable map[string]*envDescriptor
}

// StartState returns the initial state: a single top-level frame, no line
// yet entered, no open or closed marks, and the built-in environment table
// with no host-configured extensions.
func StartState() State {
	return State{
		stack: []frame{{kind: frameTopLevel}},
		line:  -1,
	}
}

// EnvExtension names an additional environment a host wants recognized
// beyond the built-in table, and how its body should be scanned.
type EnvExtension struct {
	Name string
	Kind EnvExtensionKind
}

// EnvExtensionKind selects which built-in content treatment an extension
// environment gets; it never introduces a new Mark kind, since that set is
// closed.
type EnvExtensionKind uint8

const (
	// EnvExtensionVerbatim treats the body as raw, unstyled text, ignoring
	// backslashes and percent signs until the matching \end.
	EnvExtensionVerbatim EnvExtensionKind = iota
	// EnvExtensionTikz treats the body with the same scanner used for
	// tikzpicture bodies.
	EnvExtensionTikz
)

// NewState is StartState plus a host-supplied widening of the environment
// table (SPEC_FULL.md's "config-driven environment extension"): additional
// environment names are recognized as verbatim-like or tikz-like, merged
// over the built-in table. It is the only place host configuration is
// allowed to influence tokenizer behavior, and only by widening an existing
// table — core dispatch logic itself never changes.
func NewState(extensions []EnvExtension) State {
	s := StartState()
	if len(extensions) == 0 {
		return s
	}
	merged := make(map[string]*envDescriptor, len(envDescriptors)+len(extensions))
	for name, d := range envDescriptors {
		merged[name] = d
	}
	for _, ext := range extensions {
		content := ctVerbatim
		if ext.Kind == EnvExtensionTikz {
			content = ctTikz
		}
		merged[ext.Name] = &envDescriptor{
			name:            ext.Name,
			hasMark:         false,
			allowBlankLines: true,
			content:         content,
			endRe:           buildEndRe(ext.Name),
		}
	}
	s.envTable = merged
	return s
}

// lookupEnv resolves an environment name against this state's table (the
// host-extended one, if NewState supplied extensions, otherwise the
// built-in package-level table).
func (s State) lookupEnv(name string) (*envDescriptor, bool) {
	table := s.envTable
	if table == nil {
		table = envDescriptors
	}
	d, ok := table[name]
	if !ok {
		return &envDescriptor{
			name:            name,
			hasMark:         false,
			allowBlankLines: true,
			content:         ctText,
			endRe:           buildEndRe(name),
		}, false
	}
	return d, true
}

// Marks returns the closed marks produced so far, ordered by closing time
// (ascending To, per spec.md invariant 3).
func (s State) Marks() []Mark {
	return s.marks
}

// Line returns the most recently entered line index (-1 before the first
// line has been entered).
func (s State) Line() int {
	return s.line
}

// Depth returns the current sub-tokenizer stack depth.
func (s State) Depth() int {
	return len(s.stack)
}

// --- copy-safe sequence helpers -------------------------------------------

// appendFrame always allocates a fresh backing array, so an older State
// holding a shorter view of the same logical stack can never be corrupted
// by a later push that happens to reuse freed capacity.
func appendFrame(s []frame, f frame) []frame {
	out := make([]frame, len(s)+1)
	copy(out, s)
	out[len(s)] = f
	return out
}

func appendOpen(s []openMark, m openMark) []openMark {
	out := make([]openMark, len(s)+1)
	copy(out, s)
	out[len(s)] = m
	return out
}

func appendMark(s []Mark, m Mark) []Mark {
	out := make([]Mark, len(s)+1)
	copy(out, s)
	out[len(s)] = m
	return out
}

// --- stack operations -------------------------------------------------

func (s State) push(f frame) State {
	s.stack = appendFrame(s.stack, f)
	return s
}

// replaceTop swaps the current top-of-stack frame for f (used by sequence
// frames to advance their step index without a pop/push pair).
func (s State) replaceTop(f frame) State {
	out := make([]frame, len(s.stack))
	copy(out, s.stack)
	out[len(out)-1] = f
	s.stack = out
	return s
}

// popFrame drops the top of the stack. Popping the last remaining frame is
// a programming-error condition the driver never allows to happen (the
// top-level frame always consumes on a non-empty stream).
func (s State) popFrame() State {
	if len(s.stack) == 0 {
		return s
	}
	s.stack = s.stack[:len(s.stack)-1]
	return s
}

func (s State) top() frame {
	return s.stack[len(s.stack)-1]
}

func (s State) withLine(line int) State {
	s.line = line
	return s
}

// --- mark bookkeeping ----------------------------------------------------

// openMarkAt opens a new mark of the given kind, rooted at from with content
// beginning at contentFrom. It returns the updated state and the stable id
// of the newly open mark (used later to close or abandon it).
func (s State) openMarkAt(kind MarkKind, from, contentFrom Position) (State, int) {
	return s.openNumberedMarkAt(kind, from, contentFrom, 0)
}

// openNumberedMarkAt is openMarkAt plus a 1-based enumeration number,
// recorded now so it survives through to the mark's CheckedProperties once
// closed (list items need their number at open time, since counting closed
// siblings only works before the next sibling opens).
func (s State) openNumberedMarkAt(kind MarkKind, from, contentFrom Position, number int) (State, int) {
	id := s.nextMarkID
	parentID := -1
	depth := len(s.openMarks)
	if depth > 0 {
		parentID = s.openMarks[depth-1].id
	}
	s.openMarks = appendOpen(s.openMarks, openMark{
		id:             id,
		kind:           kind,
		from:           from,
		contentFrom:    contentFrom,
		parentID:       parentID,
		openMarksDepth: depth,
		number:         number,
	})
	s.nextMarkID = id + 1
	return s, id
}

// topOpenMark returns the innermost open mark, if any.
func (s State) topOpenMark() (openMark, bool) {
	if n := len(s.openMarks); n > 0 {
		return s.openMarks[n-1], true
	}
	return openMark{}, false
}

// abandonMark discards the innermost open mark without producing a closed
// mark. It is a no-op if nothing is open (defensive; callers only invoke it
// when they know a mark is open).
func (s State) abandonMark() State {
	if len(s.openMarks) == 0 {
		return s
	}
	s.openMarks = s.openMarks[:len(s.openMarks)-1]
	return s
}

// closeMark closes the innermost open mark, recording contentTo (the start
// of the closing delimiter) and to (just past it), and appends the
// resulting closed mark to the ordered mark list.
func (s State) closeMark(contentTo, to Position) State {
	n := len(s.openMarks)
	if n == 0 {
		return s
	}
	om := s.openMarks[n-1]
	s.openMarks = s.openMarks[:n-1]

	parentID := om.parentID
	// openParent is either the mark's pre-recorded open parent, or (if that
	// parent has since been abandoned/closed and something else is now the
	// innermost still-open mark at close time) the new top of openMarks.
	if len(s.openMarks) > 0 {
		parentID = s.openMarks[len(s.openMarks)-1].id
	}

	m := Mark{
		Kind:         om.kind,
		From:         om.from,
		ContentFrom:  om.contentFrom,
		ContentTo:    contentTo,
		To:           to,
		OpenParentID: parentID,
		CheckedProperties: CheckedProperties{
			Kind:           om.kind,
			Number:         om.number,
			OpenMarksCount: len(s.openMarks),
			FromLine:       om.from.Line,
			ToLine:         to.Line,
		},
	}
	s.marks = appendMark(s.marks, m)
	return s
}

// openDepth reports how many marks are currently open (used for
// checkedProperties.openMarksCount on items, and for diagnostics).
func (s State) openDepth() int {
	return len(s.openMarks)
}
