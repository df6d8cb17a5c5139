package texmark

// tokEnv drives a frameEnv: on each call it checks for this environment's
// own `\end{name}`, and if absent delegates to the environment's content
// function.
func tokEnv(stream *Stream, state State, ef *envFrame) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}

	endLit := `\end{` + ef.desc.name + `}`
	if stream.MatchLiteral(endLit, false) {
		contentTo := currentPos(stream, state)
		stream.MarkStart()
		stream.MatchLiteral(endLit, true)
		to := currentPos(stream, state)

		next := state
		if ef.desc.content == ctItem {
			next = closeDanglingItem(next, ef, contentTo)
		}
		if ef.desc.hasMark {
			next = next.closeMark(contentTo, to)
		}
		next = next.popFrame()
		if ef.desc.name == "document" {
			next = next.push(frame{kind: frameEndDocTrailer})
		}
		return StyleTag, next, true
	}

	if ef.desc.content == ctVerbatim || ef.desc.content == ctComment {
		return tokRawEnvBody(stream, state, ef)
	}

	return callContent(ef.desc.content, stream, state, ef)
}

// tokRawEnvBody handles ctVerbatim/ctComment environment bodies, which
// consume raw text without stopping at backslashes. It must still watch for
// this environment's own `\end{name}` appearing later on the same line,
// since tokEnv's own check above only looks at the cursor position.
func tokRawEnvBody(stream *Stream, state State, ef *envFrame) (Style, State, bool) {
	style := StyleString
	if ef.desc.content == ctComment {
		style = StyleComment
	}

	loc := ef.desc.endRe.FindStringIndex(stream.Rest())
	stream.MarkStart()
	if loc == nil {
		stream.SkipToEnd()
		return style, state, true
	}
	if loc[0] == 0 {
		// The caller's literal check above already handles this position;
		// reaching here with loc[0]==0 means no content precedes it on this
		// call, so emit nothing and let the next call close the environment.
		return NoStyle, state, true
	}
	for i := 0; i < loc[0]; i++ {
		stream.Next()
	}
	return style, state, true
}
