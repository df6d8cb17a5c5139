package texmark

// Position is a 0-based line/column location in the source being tokenized.
// Line increases across the whole document; column is an offset into the
// current line only (the tokenizer never sees more than one line at a time).
type Position struct {
	Line   int
	Column int
}

// Less reports whether p sorts strictly before o in document order.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Equal reports whether p and o denote the same location.
func (p Position) Equal(o Position) bool {
	return p.Line == o.Line && p.Column == o.Column
}
