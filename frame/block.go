package frame

// Padding is the blank column kept between a side border and row content
const Padding = 1

// Dimensions fixes block geometry for every row of one render
// Width counts interior columns between the side borders, CellWidth is the left field of a Pair row
type Dimensions struct {
	Width     int
	CellWidth int
}

// Inner returns the content columns of a row, excluding padding
func (d Dimensions) Inner() int {
	if n := d.Width - 2*Padding; n > 0 {
		return n
	}
	return 0
}

// Total returns the rendered columns of every line, borders included
func (d Dimensions) Total() int {
	return d.Inner() + 2*Padding + 2
}

// Block accumulates the lines of one bordered text block
type Block struct {
	dims   Dimensions
	border BorderVariant
	lines  []string
}

// NewBlock creates an empty block, negative widths collapse to zero
func NewBlock(dims Dimensions, border BorderVariant) *Block {
	if dims.Width < 2*Padding {
		dims.Width = 2 * Padding
	}
	if dims.CellWidth < 0 {
		dims.CellWidth = 0
	}
	if dims.CellWidth > dims.Inner() {
		dims.CellWidth = dims.Inner()
	}
	return &Block{dims: dims, border: border}
}

// Dimensions returns the geometry shared by all rows
func (b *Block) Dimensions() Dimensions {
	return b.dims
}

// Top appends the top edge
func (b *Block) Top() {
	b.lines = append(b.lines, TopEdge(b.dims.Width, b.border))
}

// Bottom appends the bottom edge
func (b *Block) Bottom() {
	b.lines = append(b.lines, BottomEdge(b.dims.Width, b.border))
}

// Separator appends a horizontal rule
func (b *Block) Separator(kind SeparatorKind) {
	b.lines = append(b.lines, Separator(kind, b.dims.Width, b.border))
}

// Line appends a single text field spanning the row
func (b *Block) Line(text string, align Align) {
	b.lines = append(b.lines, b.row(Fit(text, b.dims.Inner(), align)))
}

// Pair appends a row with left text in the CellWidth field and right text right-aligned after it
func (b *Block) Pair(left, right string) {
	cell := b.dims.CellWidth
	rest := b.dims.Inner() - cell
	b.lines = append(b.lines, b.row(Fit(left, cell, AlignLeft)+Fit(right, rest, AlignRight)))
}

// Columns appends a row of equally sized left-aligned fields, the last field takes the remainder
func (b *Block) Columns(fields ...string) {
	if len(fields) == 0 {
		b.Line("", AlignLeft)
		return
	}
	inner := b.dims.Inner()
	each := inner / len(fields)
	content := ""
	for i, f := range fields {
		w := each
		if i == len(fields)-1 {
			w = inner - each*(len(fields)-1)
		}
		content += Fit(f, w, AlignLeft)
	}
	b.lines = append(b.lines, b.row(content))
}

// Lines returns the accumulated lines
func (b *Block) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Block) row(content string) string {
	return wrap(content, b.border)
}
