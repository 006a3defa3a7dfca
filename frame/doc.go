// Package frame lays text rows inside box-drawing borders.
//
// Every line a Block produces spans Dimensions.Total() terminal columns. Text is
// measured in display columns, not runes: wide CJK glyphs count two, combining
// marks count zero, and private-use weather icons count one.
//
// Usage pattern:
//
//	b := frame.NewBlock(frame.Dimensions{Width: 40, CellWidth: 14}, frame.BorderRounded)
//	b.Top()
//	b.Line("Berlin", frame.AlignCenter)
//	b.Separator(frame.SeparatorDashed)
//	b.Pair("Humidity", "71%")
//	b.Bottom()
//	for _, l := range b.Lines() {
//	    fmt.Println(l)
//	}
package frame
