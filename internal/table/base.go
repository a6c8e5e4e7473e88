package table

// Alignment is the horizontal justification of a column. The zero value
// means "not yet resolved"; inference fills those in per render call.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Base holds caller preferences shared by the text and HTML renderers and
// implements the width and alignment inference both build on. Headers,
// alignments and format hints are stored without validation; hole entries
// are permitted everywhere. All derivation happens per render call, nothing
// is cached across calls.
type Base struct {
	headers []Value
	align   []Alignment
	colFmt  []string
}

// Headers sets the optional column headers. Hole entries are normalized to
// empty labels at render time.
func (b *Base) Headers(headers []Value) {
	b.headers = headers
}

// Alignments sets explicit column alignments. Entries left AlignNone are
// inferred from the data.
func (b *Base) Alignments(align []Alignment) {
	b.align = align
}

// ColFormat stores per-column format hints. The hints are kept for callers
// that post-process rendered output; no renderer consumes them.
func (b *Base) ColFormat(colFmt []string) {
	b.colFmt = colFmt
}

// RowWidth scans rows and the stored headers and returns the smallest and
// largest length seen. With no rows and no headers both are zero; with no
// rows the minimum defaults to the maximum.
func (b *Base) RowWidth(rows [][]Value) (minWidth, maxWidth int) {
	minWidth = -1
	if b.headers != nil {
		maxWidth = len(b.headers)
		minWidth = maxWidth
	}
	for _, row := range rows {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
		if minWidth < 0 || len(row) < minWidth {
			minWidth = len(row)
		}
	}
	if minWidth < 0 {
		minWidth = maxWidth
	}
	return minWidth, maxWidth
}

// FindAlignments resolves an alignment for each of width columns, starting
// from the stored explicit alignments. Unresolved columns take the type of
// the first non-hole value found scanning rows top to bottom: strings align
// left, everything else right. The scan stops as soon as every column is
// resolved; it is deliberately not a majority vote, the first value in a
// column decides. Columns that see only holes default to left.
func (b *Base) FindAlignments(rows [][]Value, width int) []Alignment {
	align := Padded(b.align, width, AlignNone)
	unknown := 0
	for _, a := range align {
		if a == AlignNone {
			unknown++
		}
	}
	if unknown == 0 {
		return align
	}
	// Padded returns the stored slice untouched when it is already wide
	// enough; clone before filling in inferred entries so the caller's
	// hints stay as given.
	align = append([]Alignment(nil), align...)
	for _, row := range rows {
		for i, v := range row {
			if align[i] != AlignNone {
				continue
			}
			if v.IsHole() {
				continue
			}
			if v.Kind() == KindString {
				align[i] = AlignLeft
			} else {
				align[i] = AlignRight
			}
			unknown--
			if unknown == 0 {
				return align
			}
		}
	}
	for i := 0; i < width; i++ {
		if align[i] == AlignNone {
			align[i] = AlignLeft
		}
	}
	return align
}

// PadRows returns a new row set with every row padded to width with holes.
// The input rows are never modified.
func (b *Base) PadRows(rows [][]Value, width int) [][]Value {
	padded := make([][]Value, len(rows))
	for i, row := range rows {
		padded[i] = Padded(row, width, Hole)
	}
	return padded
}

// PadHeaders returns the headers normalized for rendering: nil when no
// headers are set (or they are empty), the stored slice itself when it is
// already wide enough and hole-free, otherwise a copy with holes replaced
// by empty labels and padded to width.
func (b *Base) PadHeaders(width int) []Value {
	if len(b.headers) == 0 {
		return nil
	}
	hasHole := false
	for _, h := range b.headers {
		if h.IsHole() {
			hasHole = true
			break
		}
	}
	if len(b.headers) >= width && !hasHole {
		return b.headers
	}
	headers := append([]Value(nil), b.headers...)
	if hasHole {
		for i := range headers {
			if headers[i].IsHole() {
				headers[i] = String("")
			}
		}
	}
	return Pad(headers, width, String(""))
}
