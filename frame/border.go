package frame

// BorderVariant specifies box drawing character style
type BorderVariant uint8

const (
	BorderRounded     BorderVariant = iota // ╭─╮│╰╯
	BorderSquare                           // ┌─┐│└┘
	BorderSquareHeavy                      // ┏━┓┃┗┛
	BorderDouble                           // ╔═╗║╚╝
)

// boxChars contains box drawing character sets indexed by BorderVariant
var boxChars = [...][6]rune{
	BorderRounded:     {'╭', '─', '╮', '│', '╰', '╯'},
	BorderSquare:      {'┌', '─', '┐', '│', '└', '┘'},
	BorderSquareHeavy: {'┏', '━', '┓', '┃', '┗', '┛'},
	BorderDouble:      {'╔', '═', '╗', '║', '╚', '╝'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// SeparatorKind specifies the horizontal rule drawn between block sections
type SeparatorKind uint8

const (
	SeparatorBlank       SeparatorKind = iota // │   │
	SeparatorSquare                           // ├───┤
	SeparatorSquareHeavy                      // ┣━━━┫
	SeparatorDouble                           // ╠═══╣
	SeparatorDashed                           // ├┈┈┈┤
)

// teeChars holds light-rule junctions matching each variant's vertical weight
var teeChars = [...][2]rune{
	BorderRounded:     {'├', '┤'},
	BorderSquare:      {'├', '┤'},
	BorderSquareHeavy: {'┠', '┨'},
	BorderDouble:      {'╟', '╢'},
}

func (v BorderVariant) String() string {
	switch v {
	case BorderRounded:
		return "rounded"
	case BorderSquare:
		return "square"
	case BorderSquareHeavy:
		return "square_heavy"
	case BorderDouble:
		return "double"
	default:
		return "unknown"
	}
}

func (k SeparatorKind) String() string {
	switch k {
	case SeparatorBlank:
		return "blank"
	case SeparatorSquare:
		return "square"
	case SeparatorSquareHeavy:
		return "square_heavy"
	case SeparatorDouble:
		return "double"
	case SeparatorDashed:
		return "dashed"
	default:
		return "unknown"
	}
}

// MatchingSeparator returns the solid rule conventionally paired with a border variant
func MatchingSeparator(v BorderVariant) SeparatorKind {
	switch v {
	case BorderSquareHeavy:
		return SeparatorSquareHeavy
	case BorderDouble:
		return SeparatorDouble
	default:
		return SeparatorSquare
	}
}

// chars returns the glyph set for v, unknown variants fall back to rounded
func chars(v BorderVariant) [6]rune {
	if int(v) >= len(boxChars) {
		v = BorderRounded
	}
	return boxChars[v]
}

// Vertical returns the side glyph of a variant
func Vertical(v BorderVariant) rune {
	return chars(v)[boxV]
}

// TopEdge returns the top border spanning width interior columns, width+2 columns total
func TopEdge(width int, v BorderVariant) string {
	c := chars(v)
	return edge(c[boxTL], c[boxH], c[boxTR], width)
}

// BottomEdge returns the bottom border spanning width interior columns
func BottomEdge(width int, v BorderVariant) string {
	c := chars(v)
	return edge(c[boxBL], c[boxH], c[boxBR], width)
}

// Separator returns a horizontal rule of the given kind joined to v's side borders
func Separator(kind SeparatorKind, width int, v BorderVariant) string {
	tee := teeChars[BorderRounded]
	if int(v) < len(teeChars) {
		tee = teeChars[v]
	}

	switch kind {
	case SeparatorSquare:
		return edge(tee[0], '─', tee[1], width)
	case SeparatorSquareHeavy:
		return edge('┣', '━', '┫', width)
	case SeparatorDouble:
		return edge('╠', '═', '╣', width)
	case SeparatorDashed:
		return edge(tee[0], '┈', tee[1], width)
	default:
		side := Vertical(v)
		return edge(side, ' ', side, width)
	}
}

// Row wraps content between v's side borders, fitted to width interior columns less Padding on each side
func Row(content string, width int, v BorderVariant) string {
	inner := width - 2*Padding
	if inner < 0 {
		inner = 0
	}
	return wrap(Fit(content, inner, AlignLeft), v)
}

// wrap adds padding and side borders around content already fitted to the interior
func wrap(content string, v BorderVariant) string {
	side := string(Vertical(v))
	pad := RepeatRune(' ', Padding)
	return side + pad + content + pad + side
}

func edge(left, fill, right rune, width int) string {
	return string(left) + RepeatRune(fill, width) + string(right)
}
