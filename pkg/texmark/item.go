package texmark

// tokItemContent is the ctItem content function: the body of itemize and
// enumerate environments. It recognizes `\item` (closing whatever item
// preceded it, if any), assigns enumerate numbering, and otherwise
// delegates to tokText so prose and nested constructs inside an item work
// exactly as they do anywhere else.
func tokItemContent(stream *Stream, state State, ef *envFrame) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}

	if !isItemMarker(stream) {
		return tokText(stream, state)
	}

	from := currentPos(stream, state)
	stream.MarkStart()
	stream.MatchLiteral(`\item`, true)

	state = closeOpenItem(state, ef, from)

	kind := MarkItem
	if ef.desc.markKind == MarkEnumerate {
		kind = MarkEnumerateItem
	}

	number := 0
	if kind == MarkEnumerateItem {
		number = countItemSiblings(state, ef.markID, kind) + 1
	}

	contentFrom := currentPos(stream, state)
	state, _ = state.openNumberedMarkAt(kind, from, contentFrom, number)
	return StyleTag, state, true
}

// isItemMarker reports whether \item begins at the cursor as a genuine item
// marker: at column 0 (nothing else consumed from this line yet), and
// followed by a space or end of line so that longer commands like \itemize
// are not mistaken for it. `x \item` is never at column 0 by the time this
// is checked, since tokText will already have consumed the leading `x ` in
// an earlier call.
func isItemMarker(stream *Stream) bool {
	if !stream.AtStartOfLine() {
		return false
	}
	if !stream.MatchLiteral(`\item`, false) {
		return false
	}
	rest := stream.Rest()[len(`\item`):]
	return rest == "" || rest[0] == ' '
}

// closeOpenItem closes the innermost open mark if it is an item belonging
// to this list (its open parent is the list's own mark). It is a no-op if
// this is the list's first item.
func closeOpenItem(state State, ef *envFrame, at Position) State {
	om, ok := state.topOpenMark()
	if !ok {
		return state
	}
	if om.kind != MarkItem && om.kind != MarkEnumerateItem {
		return state
	}
	if om.parentID != ef.markID {
		return state
	}
	return state.closeMark(at, at)
}

// countItemSiblings counts already-closed items of kind directly inside the
// list whose own mark id is parentID, to assign the next one-based number.
func countItemSiblings(state State, parentID int, kind MarkKind) int {
	n := 0
	for _, m := range state.marks {
		if m.OpenParentID == parentID && m.Kind == kind {
			n++
		}
	}
	return n
}

// closeDanglingItem closes a still-open item belonging to ef when its
// enclosing environment ends, so the last item in a list is never left
// open. Called by the env frame just before it closes its own mark.
func closeDanglingItem(state State, ef *envFrame, at Position) State {
	return closeOpenItem(state, ef, at)
}
